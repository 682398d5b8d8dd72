package encode

type EncodeOption func(*EncState)

// Indent sets the number of columns per nesting level. It must be
// positive; Encode rejects other values with ErrInvalidOption.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Delimiter sets the inline and tabular field delimiter: one of
// ',', '\t' or '|'.
func Delimiter(d byte) EncodeOption {
	return func(es *EncState) { es.delim = d }
}

// LengthMarker adds a '#' before declared element counts in array
// headers.
func LengthMarker(v bool) EncodeOption {
	return func(es *EncState) { es.marker = v }
}

// EncodeColors colorizes output for terminal display.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
