package nodedef

import (
	"github.com/dshills/lumiwidgets/pkg/domain/types"
	"github.com/dshills/lumiwidgets/pkg/widget"
)

// Node type names of the Lumi prompt nodes.
const (
	WildcardProcessorType types.NodeTypeName = "LumiWildcardProcessor"
	WildcardEncodeType    types.NodeTypeName = "LumiWildcardEncode"
)

// Widget names shared by the Lumi prompt nodes.
const (
	WildcardTextWidget   = "wildcard_text"
	PopulatedTextWidget  = "populated_text"
	ModeWidget           = "mode"
	SeedWidget           = "seed"
	WildcardPickerWidget = "Select to add Wildcard"
	LoRAPickerWidget     = "Select to add LoRA"
)

// Mode values.
const (
	ModePopulate  = "populate"
	ModeFixed     = "fixed"
	ModeReproduce = "reproduce"
)

// Placeholder labels, also the first option of each picker.
const (
	WildcardPickerLabel = "Select the Wildcard to add to the text"
	LoRAPickerLabel     = "Select the LoRA to add to the text"
)

// Builtins returns the definitions of the two Lumi prompt node types.
// wildcards and loras are appended to the picker option lists after the
// placeholder label.
func Builtins(wildcards, loras []string) []Definition {
	return []Definition{
		{
			Name:     WildcardProcessorType,
			Category: "Lumi/Prompt",
			Widgets: []WidgetDef{
				{Name: WildcardTextWidget, Kind: widget.KindMultiline},
				{Name: PopulatedTextWidget, Kind: widget.KindMultiline},
				modeWidgetDef(),
				{Name: SeedWidget, Kind: widget.KindNumber, Default: "0"},
				{Name: WildcardPickerWidget, Kind: widget.KindCombo, Options: pickerOptions(WildcardPickerLabel, wildcards)},
			},
		},
		{
			Name:     WildcardEncodeType,
			Category: "Lumi/Prompt",
			Widgets: []WidgetDef{
				{Name: WildcardTextWidget, Kind: widget.KindMultiline},
				{Name: PopulatedTextWidget, Kind: widget.KindMultiline},
				modeWidgetDef(),
				{Name: LoRAPickerWidget, Kind: widget.KindCombo, Options: pickerOptions(LoRAPickerLabel, loras)},
				{Name: WildcardPickerWidget, Kind: widget.KindCombo, Options: pickerOptions(WildcardPickerLabel, wildcards)},
				{Name: SeedWidget, Kind: widget.KindNumber, Default: "0"},
			},
		},
	}
}

func modeWidgetDef() WidgetDef {
	return WidgetDef{
		Name:    ModeWidget,
		Kind:    widget.KindCombo,
		Default: ModePopulate,
		Options: []string{ModePopulate, ModeFixed, ModeReproduce},
	}
}

func pickerOptions(label string, items []string) []string {
	opts := make([]string, 0, len(items)+1)
	opts = append(opts, label)
	return append(opts, items...)
}
