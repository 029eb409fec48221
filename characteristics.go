package arm5sheet

// Characteristic rolls add the score, current wounds and fatigue, and an
// ad-hoc circumstance modifier queried at roll time.
func characteristicRoll() string {
	return Roll(
		"(@{<%Char%>_Score}) [@{<%char%>_i18n}]",
		"(@{wound_total}) [@{wounds_i18n}]",
		"([[floor(@{Fatigue})]]) [@{fatigue_i18n}]",
		"(?{@{circumstantial_i18n}|0}) [@{circumstances_i18n}]",
	)
}

func characteristicTemplate() RollTemplate {
	roll := characteristicRoll()
	return NewRollTemplate("ability",
		RollField{"name", "@{character_name}"},
		RollField{"label0", "^{<%char%>}"},
		RollField{"result0", "[[ " + DieToken + " + " + roll + " ]]"},
		RollField{"banner", "@{<%Char%>_Description}"},
		RollField{"label1", "^{score}"},
		RollField{"result1", "@{<%Char%>_Score}"},
		RollField{"label2", "^{weakness-m}"},
		RollField{"result2", "[[ [[floor(@{Fatigue})]] [@{fatigue_i18n}] + @{wound_total} [@{wounds_i18n}] ]]"},
		RollField{"label3", "^{circumstances-m}"},
		RollField{"result3", "[[(?{@{circumstantial_i18n}|0})]]"},
	)
}

// characteristicRows renders the characteristics table body: one row per
// characteristic with description, score, aging points and roll buttons.
func characteristicRows() (string, error) {
	tmpl := characteristicTemplate()
	rowTmpl := `<tr>
    <th data-i18n="<%char%>" ><%Char%></th>
    <td><input type="text" class="heading_2" name="attr_<%Char%>_Description"/></td>
    <td><input type="text" class="number_1" name="attr_<%Char%>_Score" value="0"/></td>
    <td><input type="text" class="number_1" name="attr_<%Char%>_Aging" value="0"/></td>
    <td><div class="flex-container">
        <button type="roll" class="button simple-roll" name="roll_<%Char%>_simple" value="` + tmpl.Simple() + `"></button>
        <button type="roll" class="button stress-roll" name="roll_<%Char%>_stress" value="` + tmpl.Stress() + `"></button>
    </div></td>
</tr>`
	return RepeatRows(rowTmpl, NameRows("char", Characteristics))
}

// characteristicScoreOptions renders <option> elements whose values resolve
// to the characteristic's score.
func characteristicScoreOptions() (string, error) {
	return RepeatRows(
		`<option value="@{<%Char%>_Score}" data-i18n="<%char%>" ><%Char%></option>`,
		NameRows("char", Characteristics),
	)
}

// characteristicNameOptions renders <option> elements carrying the
// characteristic's attribute name.
func characteristicNameOptions() (string, error) {
	return RepeatRows(
		`<option value="<%Char%>" data-i18n="<%char%>" ><%Char%></option>`,
		NameRows("char", Characteristics),
	)
}

// characteristicScoreAsk renders the roll query letting the player pick a
// characteristic, resolving to its labeled score.
func characteristicScoreAsk() (string, error) {
	choices, err := RepeatRowsSep(
		"@{<%char%>_i18n}, @{<%Char%>_Score} [@{<%char%>_i18n}]",
		NameRows("char", Characteristics),
		"| ",
	)
	if err != nil {
		return "", err
	}
	return "?{@{characteristic_i18n}|" + choices + "}", nil
}

// characteristicNameAskAttr is the variant used inside deferred attribute
// access, where the picked value must stay unspaced.
func characteristicNameAskAttr() (string, error) {
	choices, err := RepeatRowsSep(
		"@{<%char%>_i18n},@{<%char%>_Score} [@{<%char%>_i18n}]",
		NameRows("char", Characteristics),
		"| ",
	)
	if err != nil {
		return "", err
	}
	return "?{@{characteristic_i18n}|" + choices + "}", nil
}
