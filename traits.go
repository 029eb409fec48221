package arm5sheet

// Personality traits and reputations each get six numbered rows with simple
// and stress roll buttons. Row numbering uses the plain token since the
// whole row repeats over an index range.

const traitRowCount = 6

func personalityTemplate() RollTemplate {
	roll := Roll(
		"[[@{Personality_Trait$$_Score}]] [@{Personality_Trait$$}]",
		"(?{@{circumstantial_i18n}|0}) [@{circumstances_i18n}]",
	)
	return NewRollTemplate("generic",
		RollField{"Banner", "^{personality} ^{roll}"},
		RollField{"Label", "@{Personality_Trait$$}"},
		RollField{"Result", "[[ " + DieToken + " + " + roll + " ]]"},
	)
}

// personalityTraitRows renders the personality trait table body.
func personalityTraitRows() string {
	tmpl := personalityTemplate()
	rowTmpl := `<tr>
    <td><input type="text" class="heading_2" style="width:245px" name="attr_Personality_Trait$$"/></td>
    <td><input type="text" class="number_1" style="width:70px;" name="attr_Personality_Trait$$_score"/></td>
    <td><div class="flex-container">
        <button type="roll" class="button simple-roll" name="roll_personality$$_simple" value="` + tmpl.Simple() + `"></button>
        <button type="roll" class="button stress-roll" name="roll_personality$$_stress" value="` + tmpl.Stress() + `"></button>
    </div></td>
</tr>`
	return RepeatRange(rowTmpl, DefaultToken, 1, traitRowCount)
}

func reputationTemplate() RollTemplate {
	roll := Roll(
		"[[@{Reputations$$_Score}]] [@{Reputations$$}]",
		"(?{@{circumstantial_i18n}|0}) [@{circumstances_i18n}]",
	)
	return NewRollTemplate("generic",
		RollField{"Banner", "^{reputation} ^{roll}"},
		RollField{"Label", "@{Reputations$$}"},
		RollField{"Result", "[[ " + DieToken + " + " + roll + " ]]"},
	)
}

// reputationRows renders the reputations table body.
func reputationRows() string {
	tmpl := reputationTemplate()
	rowTmpl := `<tr>
    <td><input type="text" class="heading_2" name="attr_Reputations$$"/></td>
    <td><input type="text" class="heading_2a" name="attr_Reputations$$_type"/></td>
    <td><input type="text" class="number_1" style="width:50px;" name="attr_Reputations$$_score"/></td>
    <td><div class="flex-container">
        <button type="roll" class="button simple-roll" name="roll_reputation$$_simple" value="` + tmpl.Simple() + `"></button>
        <button type="roll" class="button stress-roll" name="roll_reputation$$_stress" value="` + tmpl.Stress() + `"></button>
    </div></td>
</tr>`
	return RepeatRange(rowTmpl, DefaultToken, 1, traitRowCount)
}
