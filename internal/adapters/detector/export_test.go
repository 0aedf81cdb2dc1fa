package detector

// Detect exposes detect for testing.
func Detect(isTTY bool, ci string) LogFormat {
	return detect(isTTY, ci)
}
