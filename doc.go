// Package qrform builds contact-card barcode payloads from a bound form.
//
// A generator owns the form values and the layout that describes how to
// present them; renderers (terminal prompts, a full-screen terminal form,
// HTML) drive the form and return either the payload or markup.
//
//	gen := qrform.NewContact()
//	_ = gen.Set(qrform.FieldName, "Ada")
//	text, err := gen.Text() // MECARD:N:Ada;;
package qrform
