package arm5sheet

// Translation plumbing. Roll macros cannot call the platform's translation
// engine directly, so every translated label used inside a roll goes through
// a hidden *_i18n attribute: the attribute is declared in the HTML and a
// sheetworker fills it from the translation table on sheet open.

// sysAttrs are literal fragments used to build deferred attribute accesses
// (@{name|attr} spelled out of @, | and } pieces so the platform does not
// resolve them too early).
const sysAttrs = `<input type="hidden" name="attr_sys_at" value="@"/>
<input type="hidden" name="attr_sys_pipe" value="|"/>
<input type="hidden" name="attr_sys_rbk" value="}"/>`

// translationNames returns every key needing a *_i18n attribute:
// characteristics, techniques and forms plus the standalone roll labels.
func translationNames() []string {
	names := make([]string, 0, len(Characteristics)+len(Techniques)+len(Forms)+len(TranslationKeys))
	names = append(names, Characteristics...)
	names = append(names, Techniques...)
	names = append(names, Forms...)
	names = append(names, TranslationKeys...)
	return names
}

// translationAttrs renders the hidden inputs backing the *_i18n attributes,
// defaulting to the untranslated key.
func translationAttrs() (string, error) {
	attrs, err := RepeatRows(
		`<input type="hidden" name="attr_<%key%>_i18n" value="<%key%>"/>`,
		NameRows("key", translationNames()),
	)
	if err != nil {
		return "", err
	}
	return sysAttrs + "\n" + attrs, nil
}

// translationAttrsSetup renders the sheetworker setAttrs body filling every
// *_i18n attribute from the translation table.
func translationAttrsSetup() (string, error) {
	lines, err := RepeatRowsSep(
		`"<%key%>_i18n": getTranslationByKey("<%key%>"),`,
		NameRows("key", translationNames()),
		"\n    ",
	)
	if err != nil {
		return "", err
	}
	return "setAttrs({\n    " + lines + "\n});", nil
}
