package lumi

import (
	"github.com/dshills/lumiwidgets/pkg/behavior"
	"github.com/dshills/lumiwidgets/pkg/domain/types"
	"github.com/dshills/lumiwidgets/pkg/nodedef"
)

// Placeholder texts for the free-text widgets.
const (
	ProcessorTextPlaceholder = "Wildcard Prompt (e.g., __colors__ cat)"
	EncoderTextPlaceholder   = "Wildcard Prompt with LoRA support\ne.g., __colors__ cat <lora:detail:0.8>"
	PopulatedPlaceholder     = "Populated Prompt (auto-generated)"
)

// PickerProfile names a picker widget and how its picks become text.
type PickerProfile struct {
	Widget string
	Label  string
	Format behavior.TokenFormat
}

// Profile maps one node type onto the widgets the orchestrator wires.
type Profile struct {
	TypeName types.NodeTypeName

	// TextWidget receives picker appends.
	TextWidget string
	// PopulatedWidget is disabled while ModeWidget says so.
	PopulatedWidget string
	ModeWidget      string

	// Placeholders are set on widget elements by widget name.
	Placeholders map[string]string

	// Pickers are wired in order.
	Pickers []PickerProfile
}

// ProcessorProfile is the profile of the wildcard processor node.
func ProcessorProfile() Profile {
	return Profile{
		TypeName:        nodedef.WildcardProcessorType,
		TextWidget:      nodedef.WildcardTextWidget,
		PopulatedWidget: nodedef.PopulatedTextWidget,
		ModeWidget:      nodedef.ModeWidget,
		Placeholders: map[string]string{
			nodedef.WildcardTextWidget:  ProcessorTextPlaceholder,
			nodedef.PopulatedTextWidget: PopulatedPlaceholder,
		},
		Pickers: []PickerProfile{
			{Widget: nodedef.WildcardPickerWidget, Label: nodedef.WildcardPickerLabel, Format: behavior.TokenWildcard},
		},
	}
}

// EncoderProfile is the profile of the wildcard + LoRA encoder node.
func EncoderProfile() Profile {
	return Profile{
		TypeName:        nodedef.WildcardEncodeType,
		TextWidget:      nodedef.WildcardTextWidget,
		PopulatedWidget: nodedef.PopulatedTextWidget,
		ModeWidget:      nodedef.ModeWidget,
		Placeholders: map[string]string{
			nodedef.WildcardTextWidget:  EncoderTextPlaceholder,
			nodedef.PopulatedTextWidget: PopulatedPlaceholder,
		},
		Pickers: []PickerProfile{
			{Widget: nodedef.LoRAPickerWidget, Label: nodedef.LoRAPickerLabel, Format: behavior.TokenLoRA},
			{Widget: nodedef.WildcardPickerWidget, Label: nodedef.WildcardPickerLabel, Format: behavior.TokenWildcard},
		},
	}
}

// DefaultProfiles returns the processor and encoder profiles.
func DefaultProfiles() []Profile {
	return []Profile{ProcessorProfile(), EncoderProfile()}
}
