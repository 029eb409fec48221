package arm5sheet

// Ability and casting roll macros. These are exported to the sheet template
// as ready-made button values; none of them repeat over an enumeration, so
// they are plain macro assembly.

// Deferred attribute access: abilities and spells live in repeating
// sections, so their characteristic / technique / form scores must be
// resolved through a second attribute lookup built from the sys_at,
// sys_pipe and sys_rbk literals at roll time.

// abilityTemplate rolls an ability with its linked characteristic resolved
// through deferred access.
func abilityTemplate() RollTemplate {
	roll := Roll(
		"(@{Ability_Score} + @{Ability_Puissant}) [@{Ability_name}]",
		"(@{sys_at}@{character_name}@{sys_pipe}@{Ability_CharacName}_Score@{sys_rbk}) [@{sys_at}@{character_name}@{sys_pipe}@{Ability_CharacName}_i18n@{sys_rbk}]",
		"(@{wound_total}) [@{wounds_i18n}]",
		"([[floor(@{Fatigue})]]) [@{fatigue_i18n}]",
		"(?{@{circumstantial_i18n}|0}) [@{circumstances_i18n}]",
	)
	return NewRollTemplate("ability",
		RollField{"name", "@{character_name}"},
		RollField{"label0", "@{Ability_name}"},
		RollField{"result0", "[[ " + DieToken + " + " + roll + " ]]"},
		RollField{"banner", "@{Ability_Speciality}"},
		RollField{"label1", "^{rank}"},
		RollField{"result1", "[[ @{Ability_Score} + @{Ability_Puissant} ]]"},
		RollField{"label2", "@{Ability_CharacName}"},
		RollField{"result2", "[[ @{sys_at}@{character_name}@{sys_pipe}@{Ability_CharacName}_Score@{sys_rbk} ]]"},
		RollField{"label3", "^{weakness-m}"},
		RollField{"result3", "[[ ([[floor(@{Fatigue})]]) [@{fatigue_i18n}] + (@{wound_total}) [@{wounds_i18n}] ]]"},
		RollField{"label4", "^{circumstances-m}"},
		RollField{"result4", "[[ (?{@{circumstantial_i18n}|0}) ]]"},
	)
}

// spontaneousTemplate covers spontaneous casting: technique + form + all
// casting modifiers, halved.
func spontaneousTemplate() RollTemplate {
	roll := Roll(
		"@{Spontaneous1_Technique}",
		"@{Spontaneous1_Form}",
		"([[@{Spontaneous1_Focus}]]) [@{focus_i18n}]",
		"(@{gestures})",
		"(@{words})",
		"(@{Stamina_Score}) [@{stamina_i18n}]",
		"(@{aura}) [@{aura_i18n}]",
		"([[floor(@{Fatigue})]]) [@{fatigue_i18n}]",
		"(@{wound_total}) [@{wounds_i18n}]",
		"(?{@{modifiers_i18n}|0}) [@{modifiers_i18n}]",
	)
	return NewRollTemplate("arcane",
		RollField{"label0", "^{spontaneous} ^{casting}"},
		RollField{"result0", "[[ (" + DieToken + " + " + roll + " )/2 ]]"},
		RollField{"label1", "^{aura}"},
		RollField{"result1", "@{aura}"},
		RollField{"label2", "^{weakness-m}"},
		RollField{"result2", "[[ (@{wound_total}) [@{wounds_i18n}] + [[floor(@{fatigue})]] [@{fatigue_i18n}] ]]"},
		RollField{"label3", "^{circumstances-m}"},
		RollField{"result3", "[[ ?{@{modifiers_i18n}|0} ]]"},
		RollField{"critical", "critical-spontaneous"},
	)
}

// ceremonialTemplate adds Artes Liberales and Philosophiae to a spontaneous
// casting, still halved.
func ceremonialTemplate() RollTemplate {
	roll := Roll(
		"@{Ceremonial_Technique}",
		"@{Ceremonial_Form}",
		"([[@{Ceremonial_Focus}]]) [@{focus_i18n}]",
		"(@{gestures})",
		"(@{words})",
		"(@{Stamina_Score}) [@{stamina_i18n}]",
		"(@{aura}) [@{aura_i18n}]",
		"([[floor(@{Fatigue})]]) [@{fatigue_i18n}]",
		"(@{wound_total}) [@{wounds_i18n}]",
		"(@{Ceremonial_Artes_Lib}) [@{artes_i18n}]",
		"(@{Ceremonial_Philos}) [@{philos_i18n}]",
		"(?{@{modifiers_i18n}|0}) [@{modifiers_i18n}]",
	)
	return NewRollTemplate("arcane",
		RollField{"label0", "^{ceremonial} ^{casting}"},
		RollField{"result0", "[[ (" + DieToken + " + " + roll + " )/2 ]]"},
		RollField{"label1", "^{aura}"},
		RollField{"result1", "@{aura}"},
		RollField{"label2", "^{weakness-m}"},
		RollField{"result2", "[[ (@{wound_total}) [@{wounds_i18n}] + [[floor(@{fatigue})]] [@{fatigue_i18n}] ]]"},
		RollField{"label3", "^{circumstances-m}"},
		RollField{"result3", "?{@{modifiers_i18n}|0}"},
		RollField{"critical", "critical-spontaneous"},
	)
}

// formulaicTemplate covers formulaic casting at full total.
func formulaicTemplate() RollTemplate {
	roll := Roll(
		"@{Formulaic_Technique}",
		"@{Formulaic_Form}",
		"([[@{Formulaic_Focus}]]) [@{focus_i18n}]",
		"(@{gestures})",
		"(@{words})",
		"(@{Stamina_Score}) [@{stamina_i18n}]",
		"(@{aura}) [@{aura_i18n}]",
		"([[floor(@{Fatigue})]]) [@{fatigue_i18n}] + (@{wound_total}) [@{wounds_i18n}]",
		"(?{@{modifiers_i18n}|0}) [@{modifiers_i18n}]",
	)
	return NewRollTemplate("arcane",
		RollField{"label0", "^{formulaic} ^{casting}"},
		RollField{"result0", "[[ " + DieToken + " + " + roll + " ]]"},
		RollField{"label1", "^{aura}"},
		RollField{"result1", "@{aura}"},
		RollField{"label2", "^{weakness-m}"},
		RollField{"result2", "[[ (@{wound_total}) [@{wounds_i18n}] + [[floor(@{fatigue})]] [@{fatigue_i18n}] ]]"},
		RollField{"label3", "^{circumstances-m}"},
		RollField{"result3", "?{@{modifiers_i18n}|0}"},
	)
}

// ritualTemplate covers ritual casting: no gestures/words choice, fatigue
// cost handled elsewhere, Artes Liberales and Philosophiae added.
func ritualTemplate() RollTemplate {
	roll := Roll(
		"@{Ritual_Technique}",
		"@{Ritual_Form}",
		"([[@{Ritual_Focus}]]) [@{focus_i18n}]",
		"(@{Stamina_Score}) [@{stamina_i18n}]",
		"(@{aura}) [@{aura_i18n}]",
		"(@{Ritual_Artes_Lib}) [@{artes_i18n}]",
		"(@{Ritual_Philos}) [@{philos_i18n}]",
		"(@{wound_total}) [@{wounds_i18n}]",
		"([[floor(@{fatigue})]]) [@{fatigue_i18n}]",
		"(?{@{modifiers_i18n}|0}) [@{modifiers_i18n}]",
	)
	return NewRollTemplate("arcane",
		RollField{"label0", "^{ritual} ^{casting}"},
		RollField{"result0", "[[ " + DieToken + " + " + roll + " ]]"},
		RollField{"label1", "^{aura}"},
		RollField{"result1", "@{aura}"},
		RollField{"label2", "^{weakness-m}"},
		RollField{"result2", "[[ @{wound_total}[@{wounds_i18n}] + [[floor(@{fatigue})]][@{fatigue_i18n}] ]]"},
		RollField{"label3", "^{circumstances-m}"},
		RollField{"result3", "?{@{modifiers_i18n}|0}"},
	)
}

// Spell technique and form scores resolved through deferred access; exported
// on their own because the focus computation in the sheet depends on them.
func spellTechValue() string {
	return "(" +
		"@{sys_at}@{character_name}@{sys_pipe}@{spell_tech_name}_Score@{sys_rbk} " +
		"+ @{sys_at}@{character_name}@{sys_pipe}@{spell_tech_name}_Puissant@{sys_rbk}" +
		") " +
		"[@{sys_at}@{character_name}@{sys_pipe}@{spell_tech_name}_i18n@{sys_rbk}]"
}

func spellFormValue() string {
	return "(" +
		"@{sys_at}@{character_name}@{sys_pipe}@{spell_form_name}_Score@{sys_rbk} " +
		"+ @{sys_at}@{character_name}@{sys_pipe}@{spell_form_name}_Puissant@{sys_rbk}" +
		") " +
		"[@{sys_at}@{character_name}@{sys_pipe}@{spell_form_name}_i18n@{sys_rbk}]"
}

// spellTemplate renders the spell card: casting total scaled to zero on a
// deficient art, plus the spell's descriptive fields.
func spellTemplate() RollTemplate {
	roll := Roll(
		"(@{Stamina_Score}) [@{stamina_i18n}]",
		spellTechValue(),
		spellFormValue(),
		"([[@{spell_Focus}]]) [@{focus_i18n}]",
		"(@{spell_bonus}) [@{bonus_i18n}]",
		"(@{gestures})",
		"(@{words})",
		"(@{aura}) [@{aura_i18n}]",
		"([[floor(@{Fatigue})]]) [@{fatigue_i18n}]",
		"(@{wound_total}) [@{wounds_i18n}]",
		"(?{@{modifiers_i18n}|0}) [@{modifiers_i18n}]",
	)
	return NewRollTemplate("spell",
		RollField{"spell", "@{spell_name}"},
		RollField{"character", "@{character_name}"},
		RollField{"sigil", "@{sigil}"},
		RollField{"roll", "[[ (" + DieToken + " + " + roll + ") * [[ 1 / (1 + @{spell_Deficiency}) ]] ]]"},
		RollField{"range", "@{spell_range}"},
		RollField{"duration", "@{spell_duration}"},
		RollField{"target", "@{spell_target}"},
		RollField{"effect", "@{spell_note}"},
		RollField{"mastery", "@{spell_note-2}"},
		RollField{"Technique", "@{sys_at}@{character_name}@{sys_pipe}@{spell_tech_name}_i18n@{sys_rbk}"},
		RollField{"Form", "@{sys_at}@{character_name}@{sys_pipe}@{spell_form_name}_i18n@{sys_rbk}"},
		RollField{"Level", "@{spell_level}"},
	)
}
