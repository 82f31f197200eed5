package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attrs(pairs ...string) Attributes {
	out := make(Attributes, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Attribute{
			ID:           uint(i/2 + 1),
			Key:          pairs[i],
			Value:        pairs[i+1],
			DisplayOrder: i / 2,
			Visible:      true,
		})
	}
	return out
}

func TestNormalizeCapacity(t *testing.T) {
	n := Default()
	src := Source{Attributes: attrs("Мощност на охлаждане", "0.9/2.5/3.2 kW", "Мощност на отопление", "4.0 kW")}

	cool := n.Normalize(FieldCoolingCapacity, src)
	assert.Equal(t, Triple(0.9, 2.5, 3.2), cool)

	heat := n.Normalize(FieldHeatingCapacity, src)
	assert.Equal(t, Triple(4, 4, 4), heat)

	assert.True(t, n.Normalize(FieldPower, src).Missing())
}

func TestNormalizeKeyMatching(t *testing.T) {
	n := Default()

	folded := Source{Attributes: attrs("  мощност НА охлаждане ", "2.5 kW")}
	assert.Equal(t, Triple(2.5, 2.5, 2.5), n.Normalize(FieldCoolingCapacity, folded))

	substring := Source{Attributes: attrs("Номинална мощност на охлаждане (kW)", "3.5")}
	assert.Equal(t, Triple(3.5, 3.5, 3.5), n.Normalize(FieldCoolingCapacity, substring))

	// an exact key wins over an earlier substring match
	both := Source{Attributes: attrs("Макс. мощност на охлаждане", "9.9", "Мощност на охлаждане", "2.5")}
	assert.Equal(t, Triple(2.5, 2.5, 2.5), n.Normalize(FieldCoolingCapacity, both))
}

func TestNormalizeDuplicateKeys(t *testing.T) {
	n := Default()
	src := Source{Attributes: Attributes{
		{ID: 7, Key: "Мощност на охлаждане", Value: "3.5 kW", DisplayOrder: 2, Visible: true},
		{ID: 9, Key: "Мощност на охлаждане", Value: "2.5 kW", DisplayOrder: 1, Visible: true},
		{ID: 4, Key: "Мощност на охлаждане", Value: "7.0 kW", DisplayOrder: 1, Visible: true},
	}}
	assert.Equal(t, Triple(7, 7, 7), n.Normalize(FieldCoolingCapacity, src))
}

func TestNormalizeBTUReferencePrecedence(t *testing.T) {
	n := Default()
	a := attrs("BTU", "12000")

	v := n.Normalize(FieldBTU, Source{Attributes: a, BTULabel: "9000 BTU"})
	k, ok := v.Thousands()
	require.True(t, ok)
	assert.Equal(t, 9, k)

	v = n.Normalize(FieldBTU, Source{Attributes: a})
	k, _ = v.Thousands()
	assert.Equal(t, 12, k)

	// an unparsable reference label falls through to the attribute
	v = n.Normalize(FieldBTU, Source{Attributes: a, BTULabel: "неизвестен"})
	k, _ = v.Thousands()
	assert.Equal(t, 12, k)
}

func TestNormalizeEnergyClass(t *testing.T) {
	n := Default()
	src := Source{Attributes: attrs("Енергиен клас", "A+"), EnergyClassLabel: "A+++"}
	assert.Equal(t, Class("A+++"), n.Normalize(FieldEnergyClass, src))

	src.EnergyClassLabel = ""
	assert.Equal(t, Class("A+"), n.Normalize(FieldEnergyClass, src))
}

func TestNormalizeWiFi(t *testing.T) {
	n := Default()

	direct := Source{Attributes: attrs("Wi-Fi модул в комплекта", "Да")}
	assert.Equal(t, Flag(true), n.Normalize(FieldWiFi, direct))

	fallback := Source{Attributes: attrs("Акценти", "<ul><li>Инверторен компресор</li><li>Wi-Fi управление</li></ul>")}
	assert.Equal(t, Flag(true), n.Normalize(FieldWiFi, fallback))

	// a direct "no" is not overridden by the highlights text
	denied := Source{Attributes: attrs("Wi-Fi модул в комплекта", "Не", "Акценти", "Wi-Fi ready")}
	assert.Equal(t, Flag(false), n.Normalize(FieldWiFi, denied))

	none := Source{Attributes: attrs("Акценти", "Тих режим")}
	assert.Equal(t, Flag(false), n.Normalize(FieldWiFi, none))

	assert.Equal(t, Flag(false), n.Normalize(FieldWiFi, Source{}))
}

func TestNormalizeUnknownField(t *testing.T) {
	assert.True(t, Default().Normalize(Field("noise"), Source{}).Missing())
}

func TestNormalizeCustomTable(t *testing.T) {
	n := NewNormalizer(NewTable(Rule{Field: FieldPower, Keys: []string{"Leistung"}, Extract: ParseCapacity}))
	v := n.Normalize(FieldPower, Source{Attributes: attrs("LEISTUNG", "2,6 kW")})
	assert.Equal(t, Triple(2.6, 2.6, 2.6), v)
	assert.Equal(t, []Field{FieldPower}, n.Table().Fields())
}

func TestVisible(t *testing.T) {
	a := Attributes{{ID: 1, Key: "A", Visible: true}, {ID: 2, Key: "B"}}
	assert.Len(t, a.Visible(), 1)
	assert.Equal(t, "A", a.Visible()[0].Key)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "plain", PlainText("plain"))
	assert.Contains(t, PlainText("<p>Тих <b>режим</b></p>"), "Тих режим")
}

func TestTableParse(t *testing.T) {
	table := Default().Table()

	v, ok := table.Parse(FieldCoolingCapacity, "0.9/2.5/3.2 kW")
	require.True(t, ok)
	assert.Equal(t, Triple(0.9, 2.5, 3.2), v)

	v, ok = table.Parse(FieldBTU, "12")
	require.True(t, ok)
	assert.Equal(t, Number(12000), v)

	_, ok = table.Parse(Field("colour"), "red")
	assert.False(t, ok)
}
