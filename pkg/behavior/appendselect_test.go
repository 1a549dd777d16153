package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/lumiwidgets/pkg/widget"
)

const (
	wildcardLabel = "Select the Wildcard to add to the text"
	loraLabel     = "Select the LoRA to add to the text"
)

func newPicker(name, label string, items ...string) *widget.Widget {
	return widget.NewCombo(name, append([]string{label}, items...), label)
}

func TestTokenFormat(t *testing.T) {
	assert.Equal(t, "cat", TokenWildcard.Token("cat"))
	assert.Equal(t, "__colors__", TokenWildcard.Token("__colors__"))
	assert.Equal(t, "<lora:detail:1>", TokenLoRA.Token("detail"))
	assert.Equal(t, "<lora:sub/dir/x.safetensors:1>", TokenLoRA.Token("sub/dir/x.safetensors"))
}

func TestAppendToken(t *testing.T) {
	tests := []struct {
		name    string
		current string
		token   string
		want    string
	}{
		{"empty", "", "cat", "cat"},
		{"whitespace only", " \n\t ", "cat", "cat"},
		{"existing text", "a scene", "cat", "a scene cat"},
		{"trailing space kept", "a scene ", "cat", "a scene  cat"},
		{"token not trimmed", "a", " b ", "a  b "},
		{"repeat", "cat", "cat", "cat cat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppendToken(tt.current, tt.token))
		})
	}
}

func TestAppendOnSelect_WildcardPicks(t *testing.T) {
	text := widget.New("wildcard_text", widget.KindMultiline, "")
	picker := newPicker("Select to add Wildcard", wildcardLabel, "cat", "__colors__")
	NewAppendOnSelect(picker, text, wildcardLabel, TokenWildcard).Wire()

	picker.Interact("cat")
	assert.Equal(t, "cat", text.Value())

	picker.Interact("cat")
	assert.Equal(t, "cat cat", text.Value())

	picker.Interact("__colors__")
	assert.Equal(t, "cat cat __colors__", text.Value())
	assert.Equal(t, wildcardLabel, picker.Value())
}

func TestAppendOnSelect_LoRAPick(t *testing.T) {
	text := widget.New("wildcard_text", widget.KindMultiline, "a scene")
	picker := newPicker("Select to add LoRA", loraLabel, "detail")
	NewAppendOnSelect(picker, text, loraLabel, TokenLoRA).Wire()

	picker.Interact("detail")
	assert.Equal(t, "a scene <lora:detail:1>", text.Value())
	assert.Equal(t, loraLabel, picker.Value())
}

func TestAppendOnSelect_PlaceholderPicksIgnored(t *testing.T) {
	text := widget.New("wildcard_text", widget.KindMultiline, "keep me")
	picker := newPicker("Select to add Wildcard", wildcardLabel, "cat")
	NewAppendOnSelect(picker, text, wildcardLabel, TokenWildcard).Wire()

	for _, v := range []string{wildcardLabel, "Select", "Selected", ""} {
		picker.Interact(v)
		assert.Equal(t, "keep me", text.Value(), "pick %q", v)
	}
}

func TestAppendOnSelect_MissingTarget(t *testing.T) {
	picker := newPicker("Select to add Wildcard", wildcardLabel, "cat")
	a := NewAppendOnSelect(picker, nil, wildcardLabel, TokenWildcard)
	a.Wire()

	assert.NotPanics(t, func() { picker.Interact("cat") })
	assert.Equal(t, wildcardLabel, picker.Value(), "accessor is still installed")
	assert.Equal(t, wildcardLabel, a.Label())
}

func TestAppendOnSelect_NilPicker(t *testing.T) {
	text := widget.New("wildcard_text", widget.KindMultiline, "")
	a := NewAppendOnSelect(nil, text, wildcardLabel, TokenWildcard)
	assert.NotPanics(t, a.Wire)

	a.Select("cat")
	assert.Equal(t, "cat", text.Value())
}

func TestAppendOnSelect_ValueAccessor(t *testing.T) {
	text := widget.New("wildcard_text", widget.KindMultiline, "")
	picker := newPicker("Select to add LoRA", loraLabel, "detail")
	NewAppendOnSelect(picker, text, loraLabel, TokenLoRA).Wire()

	assert.Equal(t, loraLabel, picker.Value())

	// Blind re-assignments never raise and never show up on read
	assert.True(t, picker.SetValue("detail"))
	assert.False(t, picker.SetValue(loraLabel))
	assert.Equal(t, loraLabel, picker.Value())

	// Direct writes do not append; only picks do
	assert.Equal(t, "", text.Value())
}

func TestAppendOnSelect_TwoPickersShareTarget(t *testing.T) {
	text := widget.New("wildcard_text", widget.KindMultiline, "")
	lora := newPicker("Select to add LoRA", loraLabel, "detail")
	wildcard := newPicker("Select to add Wildcard", wildcardLabel, "__colors__")

	NewAppendOnSelect(lora, text, loraLabel, TokenLoRA).Wire()
	NewAppendOnSelect(wildcard, text, wildcardLabel, TokenWildcard).Wire()

	wildcard.Interact("__colors__")
	lora.Interact("detail")
	wildcard.Interact("__colors__")

	assert.Equal(t, "__colors__ <lora:detail:1> __colors__", text.Value())
	assert.Equal(t, loraLabel, lora.Value())
	assert.Equal(t, wildcardLabel, wildcard.Value())
}
