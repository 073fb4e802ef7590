// Package generator implements the forms that turn user input into barcode
// payload text. A Generator owns its bound fields and layout; renderers only
// read the layout, write values through the bound form, and ask the generator
// to validate a single field or produce the final text.
//
// Contact is the MeCard contact-card generator:
//
//	gen := generator.NewContact()
//	_ = gen.Set(model.FieldName, "Ada Lovelace")
//	_ = gen.Set(model.FieldTel, "(555) 123-4567")
//	text, err := gen.Text() // MECARD:N:Ada Lovelace;TEL:5551234567;;
//
// Validation failures surface as *ValidationError so callers can show the
// message next to the offending input.
package generator
