package arm5sheet

import (
	"context"
	"fmt"
)

// Generator assembles the full slot → fragment mapping for the sheet
// template. One Generator produces one sheet; the alert ID ledger is not
// reusable across runs.
type Generator struct {
	docs   *DocConverter
	alerts *Alerts
}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{
		docs:   NewDocConverter(),
		alerts: NewAlerts(),
	}
}

// Generate produces every named fragment the sheet template consumes.
// Any failure aborts with no partial map.
func (g *Generator) Generate(ctx context.Context, in Input) (map[string]string, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	parts := map[string]string{
		"html_header": HTMLHeader,
		"css_header":  CSSHeader,

		"personality_trait_rows": personalityTraitRows(),
		"reputation_rows":        reputationRows(),

		"ability_roll_simple": abilityTemplate().Simple(),
		"ability_roll_stress": abilityTemplate().Stress(),

		"spontaneous_roll_stress": spontaneousTemplate().Stress(),
		"ceremonial_roll_stress":  ceremonialTemplate().Stress(),
		"formulaic_roll_simple":   formulaicTemplate().Simple(),
		"formulaic_roll_stress":   formulaicTemplate().Stress(),
		"ritual_roll_simple":      ritualTemplate().Simple(),
		"ritual_roll_stress":      ritualTemplate().Stress(),

		"spell_tech_value":  spellTechValue(),
		"spell_form_value":  spellFormValue(),
		"spell_roll_simple": spellTemplate().Simple(),
		"spell_roll_stress": spellTemplate().Stress(),

		"botch_separate": BotchQuery(8),

		"fatigue_levels_options": fatigueLevelsOptions(),
		"fatigue_level_css":      fatigueLevelCSS(),
	}

	// Repeated fragments that can fail on a template/field mismatch.
	repeated := []struct {
		name  string
		build func() (string, error)
	}{
		{"characteristic_rows", characteristicRows},
		{"characteristic_score_options", characteristicScoreOptions},
		{"characteristic_score_ask", characteristicScoreAsk},
		{"characteristic_name_options", characteristicNameOptions},
		{"characteristic_name_ask_attr", characteristicNameAskAttr},
		{"technique_definitions", techniqueDefinitions},
		{"technique_score_options", func() (string, error) { return artScoreOptions("tech", Techniques) }},
		{"technique_score_options_unlabeled", func() (string, error) { return artScoreOptionsUnlabeled("tech", Techniques) }},
		{"technique_name_options", func() (string, error) { return artNameOptions("tech", Techniques) }},
		{"technique_enumerated_options", func() (string, error) { return artEnumeratedOptions("tech", Techniques) }},
		{"form_score_options", func() (string, error) { return artScoreOptions("form", Forms) }},
		{"form_score_options_unlabeled", func() (string, error) { return artScoreOptionsUnlabeled("form", Forms) }},
		{"form_name_options", func() (string, error) { return artNameOptions("form", Forms) }},
		{"form_enumerated_options", func() (string, error) { return artEnumeratedOptions("form", Forms) }},
		{"additional_fatigue_levels", additionalFatigueRows},
		{"translation_attrs", translationAttrs},
		{"translation_attrs_setup", translationAttrsSetup},
	}
	for _, r := range repeated {
		fragment, err := r.build()
		if err != nil {
			return nil, fmt.Errorf("part %q: %w", r.name, err)
		}
		parts[r.name] = fragment
	}

	first, second, err := formDefinitions()
	if err != nil {
		return nil, fmt.Errorf("part \"form_definitions\": %w", err)
	}
	parts["form_definitions_1"] = first
	parts["form_definitions_2"] = second

	colorCSS, err := RollTemplateColorCSS(in.Colors)
	if err != nil {
		return nil, fmt.Errorf("part \"custom_rt_color_css\": %w", err)
	}
	parts["custom_rt_color_css"] = colorCSS

	if in.Documentation != "" {
		doc, err := g.docs.Convert(ctx, in.Documentation)
		if err != nil {
			return nil, fmt.Errorf("part \"documentation\": %w", err)
		}
		parts["documentation"] = doc
	}

	var alerts string
	for i, spec := range in.Alerts {
		banner, err := g.alerts.Alert(spec.Title, spec.Text, spec.Level, spec.ID)
		if err != nil {
			return nil, fmt.Errorf("alert %d (%q): %w", i, spec.Title, err)
		}
		if alerts != "" {
			alerts += "\n"
		}
		alerts += banner
	}
	parts["alerts"] = alerts

	marker := in.DisableMarker
	if marker == "" {
		marker = DefaultDisableMarker
	}
	parts["disable_old_alerts"] = g.alerts.DisableOldAlerts(marker)

	return parts, nil
}
