package pdfdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeText(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, "-"},
		{"empty string", "", "-"},
		{"string", "Chicken", "Chicken"},
		{"zero int is meaningful", 0, "0"},
		{"int", 176, "176"},
		{"zero float", 0.0, "0"},
		{"float", 2.5, "2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeText(tt.in))
		})
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	doc := &Document{Title: "Test"}
	doc.Add(
		Text{Value: "Nutrition Plan", Style: Style{Size: 18, Bold: true}, Align: AlignCenter},
		Spacer{Height: 4},
		Row{Cells: []Cell{
			{Value: "Calories", Width: 0.5},
			{Value: "2249", Width: 0.5, Align: AlignRight},
		}},
		Divider{},
		Table{
			Headers: []string{"Food", "Weight", "Cals"},
			Rows: [][]string{
				{"Chicken Breast", "107 g", "176"},
				{"White Rice", "189 g", "246"},
			},
			ZebraFill: true,
		},
	)

	r := NewRenderer(t.TempDir())
	out, err := r.Render(doc)
	assert.NoError(t, err)
	assert.True(t, len(out) > 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRender_RTLWithoutFontFails(t *testing.T) {
	r := NewRenderer(t.TempDir())
	_, err := r.Render(&Document{RTL: true})
	assert.Error(t, err)
}
