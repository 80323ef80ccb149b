package bootstrap

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// EnableLayers returns the requested layers the driver reports, in request
// order. missing is called once for each requested layer that is not
// available; an unavailable layer never fails negotiation.
func EnableLayers(requested, available []string, missing func(name string)) []string {
	availableSet := nameSet(available)

	enabled := make([]string, 0, len(requested))
	for _, layer := range requested {
		if _, ok := availableSet[layer]; !ok {
			if missing != nil {
				missing(layer)
			}
			continue
		}
		enabled = append(enabled, layer)
	}
	return enabled
}

// RequestExtensions builds the instance extension list: every presentation
// extension, unchecked and in platform order, then each optional extension
// the driver reports. A missing presentation extension surfaces when the
// instance is created, not here.
func RequestExtensions(presentation, optional, available []string, missing func(name string)) []string {
	extensions := make([]string, 0, len(presentation)+len(optional))
	extensions = append(extensions, presentation...)

	requested := nameSet(presentation)
	availableSet := nameSet(available)
	for _, ext := range optional {
		if _, dup := requested[ext]; dup {
			continue
		}
		if _, ok := availableSet[ext]; !ok {
			if missing != nil {
				missing(ext)
			}
			continue
		}
		requested[ext] = struct{}{}
		extensions = append(extensions, ext)
	}
	return extensions
}
