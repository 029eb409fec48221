package arm5sheet

// xpInputs renders the [current/advancement/total] experience input triple
// for an art or ability attribute. The advancement and total inputs are
// sheetworker-computed, hence readonly.
func xpInputs(name string) string {
	return `[` +
		`<input type="text" class="number_3" name="attr_` + name + `_exp" value="0"/>` +
		`/` +
		`<input type="text" class="number_3 advance" name="attr_` + name + `_advancementExp" value="0" readonly/>` +
		`/` +
		`<input type="text" class="number_3 total" name="attr_` + name + `_totalExp" value="0" readonly/>` +
		`]`
}

// artRowTemplate is the definition row shared by techniques and forms:
// score, localized name, xp triple, puissant bonus.
func artRowTemplate(key string) string {
	capKey := "<%" + capitalize(key) + "%>"
	lowKey := "<%" + key + "%>"
	return `<tr>
    <td><input type="text" class="number_3" name="attr_` + capKey + `_Score" value="0"/></td>
    <td data-i18n="` + lowKey + `" >` + capKey + `</td>
    <td>` + xpInputs(capKey) + `</td>
    <td style="text-align: center"><input type="text" class="number_3 minor" name="attr_` + capKey + `_Puissant" value="0"/></td>
</tr>`
}

// techniqueDefinitions renders the techniques table body.
func techniqueDefinitions() (string, error) {
	return RepeatRows(artRowTemplate("tech"), NameRows("tech", Techniques))
}

// Forms span two side-by-side tables of five.
func formDefinitions() (first, second string, err error) {
	tmpl := artRowTemplate("form")
	first, err = RepeatRows(tmpl, NameRows("form", Forms[:5]))
	if err != nil {
		return "", "", err
	}
	second, err = RepeatRows(tmpl, NameRows("form", Forms[5:]))
	if err != nil {
		return "", "", err
	}
	return first, second, nil
}

// artScoreOptions renders <option> elements resolving to the art's score
// plus puissant bonus, labeled for the roll breakdown.
func artScoreOptions(key string, names []string) (string, error) {
	capKey := "<%" + capitalize(key) + "%>"
	lowKey := "<%" + key + "%>"
	return RepeatRows(
		`<option value="(@{`+capKey+`_Score} + @{`+capKey+`_Puissant}) [@{`+lowKey+`_i18n}]" data-i18n="`+lowKey+`" >`+capKey+`</option>`,
		NameRows(key, names),
	)
}

// artScoreOptionsUnlabeled is the variant without the roll label, for
// contexts where the label would leak into a nested expression.
func artScoreOptionsUnlabeled(key string, names []string) (string, error) {
	capKey := "<%" + capitalize(key) + "%>"
	lowKey := "<%" + key + "%>"
	return RepeatRows(
		`<option value="@{`+capKey+`_Score} + @{`+capKey+`_Puissant}" data-i18n="`+lowKey+`" >`+capKey+`</option>`,
		NameRows(key, names),
	)
}

// artNameOptions renders <option> elements carrying the art's attribute name.
func artNameOptions(key string, names []string) (string, error) {
	capKey := "<%" + capitalize(key) + "%>"
	lowKey := "<%" + key + "%>"
	return RepeatRows(
		`<option value="`+capKey+`" data-i18n="`+lowKey+`" >`+capKey+`</option>`,
		NameRows(key, names),
	)
}

// artEnumeratedOptions renders <option> elements carrying the art's 1-based
// position, for attributes that store an index instead of a name.
func artEnumeratedOptions(key string, names []string) (string, error) {
	capKey := "<%" + capitalize(key) + "%>"
	lowKey := "<%" + key + "%>"
	return RepeatRows(
		`<option value="<%index%>" data-i18n="`+lowKey+`" >`+capKey+`</option>`,
		EnumerateRows(key, names, 1),
	)
}
