package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/AmrIbrahim41/tfg-backend/internal/models"
	"github.com/AmrIbrahim41/tfg-backend/internal/nutrition"
	"github.com/AmrIbrahim41/tfg-backend/internal/pdfdoc"
)

// ReportService renders saved nutrition plans and training plans to PDF.
type ReportService struct {
	nutritionSvc    *NutritionService
	subscriptionSvc *SubscriptionService
	trainingSvc     *TrainingService
	renderer        *pdfdoc.Renderer
}

func NewReportService(
	nutritionSvc *NutritionService,
	subscriptionSvc *SubscriptionService,
	trainingSvc *TrainingService,
	renderer *pdfdoc.Renderer,
) *ReportService {
	return &ReportService{
		nutritionSvc:    nutritionSvc,
		subscriptionSvc: subscriptionSvc,
		trainingSvc:     trainingSvc,
		renderer:        renderer,
	}
}

// NutritionPlanPDF renders a saved plan card. lang is "en" or "ar".
func (s *ReportService) NutritionPlanPDF(planID uuid.UUID, lang string) ([]byte, error) {
	plan, err := s.nutritionSvc.GetPlan(planID)
	if err != nil {
		return nil, err
	}
	computed, err := s.nutritionSvc.RecomputePlan(plan)
	if err != nil {
		return nil, err
	}

	sub, err := s.subscriptionSvc.Get(plan.SubscriptionID)
	if err != nil {
		return nil, err
	}

	clientName := ""
	if sub.Client != nil {
		clientName = sub.Client.Name
	}

	var doc *pdfdoc.Document
	if lang == "ar" {
		doc = buildNutritionDocAR(plan, computed, clientName)
	} else {
		doc = buildNutritionDocEN(plan, computed, clientName)
	}
	return s.renderer.Render(doc)
}

func buildNutritionDocEN(plan *models.NutritionPlan, computed *ComputeResult, clientName string) *pdfdoc.Document {
	doc := &pdfdoc.Document{Title: plan.Name}

	titleSty := pdfdoc.Style{Size: 20, Bold: true}.WithColor(200, 30, 30)
	labelSty := pdfdoc.Style{Size: 11, Bold: true}
	valueSty := pdfdoc.Style{Size: 11}

	doc.Add(
		pdfdoc.Text{Value: plan.PDFBrandText, Style: titleSty, Align: pdfdoc.AlignCenter},
		pdfdoc.Text{Value: plan.Name, Style: pdfdoc.Style{Size: 14, Bold: true}, Align: pdfdoc.AlignCenter},
		pdfdoc.Spacer{Height: 3},
		pdfdoc.Row{Cells: []pdfdoc.Cell{
			{Value: "Client:", Width: 0.2, Style: labelSty},
			{Value: pdfdoc.SafeText(clientName), Width: 0.4, Style: valueSty},
			{Value: "Duration:", Width: 0.2, Style: labelSty},
			{Value: fmt.Sprintf("%d weeks", plan.DurationWeeks), Width: 0.2, Style: valueSty},
		}},
		pdfdoc.Row{Cells: []pdfdoc.Cell{
			{Value: "Diet Type:", Width: 0.2, Style: labelSty},
			{Value: pdfdoc.SafeText(plan.DietType), Width: 0.4, Style: valueSty},
			{Value: "Water:", Width: 0.2, Style: labelSty},
			{Value: fmt.Sprintf("%s L/day", pdfdoc.SafeText(plan.WaterIntake)), Width: 0.2, Style: valueSty},
		}},
		pdfdoc.Divider{},
	)

	doc.Add(
		pdfdoc.Text{Value: "Daily Targets", Style: pdfdoc.Style{Size: 13, Bold: true}},
		pdfdoc.Table{
			Headers: []string{"Calories", "Protein", "Carbs", "Fats"},
			Rows: [][]string{{
				pdfdoc.SafeText(computed.TargetCalories),
				fmt.Sprintf("%d g", computed.Macros.Protein.Grams),
				fmt.Sprintf("%d g", computed.Macros.Carbs.Grams),
				fmt.Sprintf("%d g", computed.Macros.Fats.Grams),
			}},
		},
		pdfdoc.Spacer{Height: 4},
	)

	if computed.Warning != "" {
		doc.Add(
			pdfdoc.Text{Value: computed.Warning, Style: pdfdoc.Style{Size: 10, Bold: true}.WithColor(200, 30, 30)},
			pdfdoc.Spacer{Height: 2},
		)
	}

	mealCount := nutrition.DefaultMealsCount
	if plan.CalcMeals != nil && *plan.CalcMeals > 0 {
		mealCount = *plan.CalcMeals
	}
	doc.Add(pdfdoc.Text{
		Value: fmt.Sprintf("Per Meal (%d meals)", mealCount),
		Style: pdfdoc.Style{Size: 13, Bold: true},
	})
	doc.Add(pdfdoc.Table{
		Headers: []string{"Protein Cals", "Carb Cals", "Fat Cals", "Protein g", "Carbs g", "Fats g"},
		Rows: [][]string{{
			pdfdoc.SafeText(computed.PerMeal.ProteinCals),
			pdfdoc.SafeText(computed.PerMeal.CarbsCals),
			pdfdoc.SafeText(computed.PerMeal.FatsCals),
			pdfdoc.SafeText(computed.PerMeal.ProteinGrams),
			pdfdoc.SafeText(computed.PerMeal.CarbsGrams),
			pdfdoc.SafeText(computed.PerMeal.FatsGrams),
		}},
	})
	doc.Add(pdfdoc.Spacer{Height: 4})

	for _, group := range computed.ExchangeList {
		rows := make([][]string, 0, len(group.Items))
		for _, item := range group.Items {
			rows = append(rows, []string{
				item.Name,
				fmt.Sprintf("%d %s", item.Weight, item.Unit),
				pdfdoc.SafeText(item.Meta.Cals),
				pdfdoc.SafeText(item.Meta.Pro),
				pdfdoc.SafeText(item.Meta.Carbs),
				pdfdoc.SafeText(item.Meta.Fats),
			})
		}
		doc.Add(
			pdfdoc.Text{
				Value: fmt.Sprintf("%s (%d cals per meal)", group.Name, group.TargetCals),
				Style: pdfdoc.Style{Size: 12, Bold: true},
			},
			pdfdoc.Table{
				Headers:   []string{"Food", "Weight", "Cals", "Pro", "Carbs", "Fats"},
				Widths:    []float64{0.35, 0.15, 0.125, 0.125, 0.125, 0.125},
				Rows:      rows,
				ZebraFill: true,
			},
			pdfdoc.Spacer{Height: 3},
		)
	}

	if plan.Notes != "" {
		doc.Add(
			pdfdoc.Divider{},
			pdfdoc.Text{Value: "Notes", Style: pdfdoc.Style{Size: 12, Bold: true}},
			pdfdoc.Text{Value: plan.Notes, Style: valueSty},
		)
	}
	return doc
}

func buildNutritionDocAR(plan *models.NutritionPlan, computed *ComputeResult, clientName string) *pdfdoc.Document {
	doc := &pdfdoc.Document{Title: plan.Name, RTL: true}

	titleSty := pdfdoc.Style{Size: 20, Bold: true}.WithColor(200, 30, 30)
	labelSty := pdfdoc.Style{Size: 11, Bold: true}
	valueSty := pdfdoc.Style{Size: 11}

	doc.Add(
		pdfdoc.Text{Value: plan.PDFBrandText, Style: titleSty, Align: pdfdoc.AlignCenter},
		pdfdoc.Text{Value: "الخطة الغذائية", Style: pdfdoc.Style{Size: 14, Bold: true}, Align: pdfdoc.AlignCenter},
		pdfdoc.Spacer{Height: 3},
		pdfdoc.Row{Cells: []pdfdoc.Cell{
			{Value: "الاسم:", Width: 0.2, Style: labelSty},
			{Value: pdfdoc.SafeText(clientName), Width: 0.4, Style: valueSty},
			{Value: "المدة:", Width: 0.2, Style: labelSty},
			{Value: fmt.Sprintf("%d أسابيع", plan.DurationWeeks), Width: 0.2, Style: valueSty},
		}},
		pdfdoc.Divider{},
	)

	doc.Add(
		pdfdoc.Text{Value: "الأهداف اليومية", Style: pdfdoc.Style{Size: 13, Bold: true}},
		pdfdoc.Table{
			Headers: []string{"سعرات", "بروتين", "كارب", "دهون"},
			Rows: [][]string{{
				pdfdoc.SafeText(computed.TargetCalories),
				fmt.Sprintf("%d جم", computed.Macros.Protein.Grams),
				fmt.Sprintf("%d جم", computed.Macros.Carbs.Grams),
				fmt.Sprintf("%d جم", computed.Macros.Fats.Grams),
			}},
		},
		pdfdoc.Spacer{Height: 4},
	)

	for _, group := range computed.ExchangeList {
		rows := make([][]string, 0, len(group.Items))
		for _, item := range group.Items {
			name := item.ArabicName
			if name == "" {
				name = item.Name
			}
			rows = append(rows, []string{
				name,
				fmt.Sprintf("%d جم", item.Weight),
				pdfdoc.SafeText(item.Meta.Cals),
			})
		}
		doc.Add(
			pdfdoc.Text{Value: arabicGroupName(group.Name), Style: pdfdoc.Style{Size: 12, Bold: true}},
			pdfdoc.Table{
				Headers:   []string{"الصنف", "الوزن", "سعرات"},
				Widths:    []float64{0.5, 0.25, 0.25},
				Rows:      rows,
				ZebraFill: true,
			},
			pdfdoc.Spacer{Height: 3},
		)
	}

	if plan.Notes != "" {
		doc.Add(
			pdfdoc.Divider{},
			pdfdoc.Text{Value: "ملاحظات", Style: pdfdoc.Style{Size: 12, Bold: true}},
			pdfdoc.Text{Value: plan.Notes, Style: valueSty},
		)
	}
	return doc
}

func arabicGroupName(group string) string {
	switch group {
	case nutrition.GroupProteinSources:
		return "مصادر البروتين"
	case nutrition.GroupCarbohydrates:
		return "الكربوهيدرات"
	case nutrition.GroupFats:
		return "الدهون"
	}
	return group
}

// WorkoutPlanPDF renders the split template for a subscription.
func (s *ReportService) WorkoutPlanPDF(subscriptionID uuid.UUID) ([]byte, error) {
	plan, err := s.trainingSvc.GetPlan(subscriptionID)
	if err != nil {
		return nil, err
	}
	sub, err := s.subscriptionSvc.Get(subscriptionID)
	if err != nil {
		return nil, err
	}

	clientName := ""
	if sub.Client != nil {
		clientName = sub.Client.Name
	}

	doc := &pdfdoc.Document{Title: "Workout Plan"}
	doc.Add(
		pdfdoc.Text{Value: "Workout Plan", Style: pdfdoc.Style{Size: 20, Bold: true}.WithColor(200, 30, 30), Align: pdfdoc.AlignCenter},
		pdfdoc.Text{Value: pdfdoc.SafeText(clientName), Style: pdfdoc.Style{Size: 13}, Align: pdfdoc.AlignCenter},
		pdfdoc.Text{
			Value: fmt.Sprintf("%d day cycle", plan.CycleLength),
			Style: pdfdoc.Style{Size: 11}, Align: pdfdoc.AlignCenter,
		},
		pdfdoc.Divider{},
	)

	for _, split := range plan.Splits {
		doc.Add(pdfdoc.Text{
			Value: fmt.Sprintf("Day %d: %s", split.Order, split.Name),
			Style: pdfdoc.Style{Size: 13, Bold: true},
		})
		for _, ex := range split.Exercises {
			rows := make([][]string, 0, len(ex.Sets))
			for _, set := range ex.Sets {
				rows = append(rows, []string{
					pdfdoc.SafeText(set.Order),
					pdfdoc.SafeText(set.Reps),
					pdfdoc.SafeText(set.Weight),
					pdfdoc.SafeText(set.Technique),
					pdfdoc.SafeText(set.Equipment),
				})
			}
			name := ex.Name
			if ex.Note != "" {
				name = fmt.Sprintf("%s (%s)", ex.Name, ex.Note)
			}
			doc.Add(
				pdfdoc.Text{Value: name, Style: pdfdoc.Style{Size: 11, Bold: true}},
				pdfdoc.Table{
					Headers:   []string{"Set", "Reps", "Weight", "Technique", "Equipment"},
					Widths:    []float64{0.1, 0.2, 0.2, 0.25, 0.25},
					Rows:      rows,
					BodySty:   pdfdoc.Style{Size: 10},
					HeaderSty: pdfdoc.Style{Size: 10},
				},
				pdfdoc.Spacer{Height: 2},
			)
		}
		doc.Add(pdfdoc.Spacer{Height: 3})
	}

	return s.renderer.Render(doc)
}
