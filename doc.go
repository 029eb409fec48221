// Package arm5sheet generates the HTML and CSS fragments of the Ars Magica
// 5th virtual-tabletop character sheet.
//
// The sheet's table rows, option lists, dice macros and roll-template color
// rules all follow fixed enumerations (characteristics, techniques, forms)
// or small data tables (the color CSV). This package produces every such
// fragment as a named part; a build step splices the parts into the
// externally maintained template.html / template.css pair.
//
// # Quick start
//
//	gen := arm5sheet.NewGenerator()
//	parts, err := gen.Generate(ctx, arm5sheet.Input{
//	    Documentation: docMarkdown,
//	    Colors:        colors,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(parts["characteristic_rows"])
//
// # Generation pipeline
//
//  1. Enumeration tables repeated through templates (Repeat, RepeatRows)
//  2. Dice macro assembly (Roll, RollTemplate, BotchQuery)
//  3. Roll-template color CSS from the color table, with luma-picked
//     text colors (RollTemplateColorCSS)
//  4. Documentation markdown to annotated HTML via Goldmark (DocConverter)
//
// Everything is a deterministic, single-shot string transformation: same
// inputs, same fragments. Any bad input fails generation immediately rather
// than emitting partially-correct fragments.
package arm5sheet
