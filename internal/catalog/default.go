package catalog

// Default returns the built-in TechStore Electronics catalog. Category
// umbrella keys ("tv", "phones") resolve to synthetic selection records
// so a vague question still gets a useful inventory summary.
func Default() *Catalog {
	phoneSelection := Product{
		Name:        "Phone Selection",
		Price:       "Starting at $899",
		Features:    []string{"Multiple models available", "5G enabled", "Premium camera systems", "All-day battery life"},
		Description: "We offer the SmartX Pro Phone ($899) and the iPhone 16 ($999)",
		Kind:        KindSelection,
	}
	tvSelection := Product{
		Name:        "TV Selection",
		Price:       "Starting at $649",
		Features:    []string{"Multiple sizes available", "4K and QLED options", "Smart TV features", "HDR support"},
		Description: "We offer TCL 55-inch Smart TV ($649) and Samsung 65-inch QLED TV ($1,199)",
		Kind:        KindSelection,
	}
	fotosnapDSLR := Product{
		Name:        "FotoSnap DSLR Camera",
		Price:       "$1,299",
		Features:    []string{"24.2MP sensor", "4K video recording", "Weather sealed body", "Dual card slots", "Professional lens mount"},
		Description: "Professional DSLR camera for serious photographers",
	}

	return New(map[string]Product{
		"smartx pro phone": {
			Name:        "SmartX Pro Phone",
			Price:       "$899",
			Features:    []string{"6.1-inch display", "128GB storage", "Triple camera system", "5G enabled", "All-day battery life"},
			Description: "Premium smartphone perfect for photography and productivity",
		},
		"iphone 16": {
			Name:        "iPhone 16",
			Price:       "$999",
			Features:    []string{"6.1-inch Super Retina display", "256GB storage", "A18 chip", "Advanced dual camera", "Action button"},
			Description: "Latest-generation smartphone with industry-leading performance",
		},
		"phone":  phoneSelection,
		"phones": phoneSelection,
		"fotosnap camera": {
			Name:        "FotoSnap DSLR Camera",
			Price:       "$1,299",
			Features:    []string{"24.2MP sensor", "4K video recording", "Weather sealed body", "Dual card slots", "Professional lens mount"},
			Description: "Professional DSLR camera for serious photographers",
		},
		"fotosnap compact": {
			Name:        "FotoSnap Compact Camera",
			Price:       "$599",
			Features:    []string{"20MP sensor", "10x optical zoom", "WiFi connectivity", "Compact design", "Image stabilization"},
			Description: "Portable camera with professional features in a compact body",
		},
		"dslr": fotosnapDSLR,
		"tcl tv": {
			Name:        "TCL 55-inch Smart TV",
			Price:       "$649",
			Features:    []string{"4K Ultra HD", "HDR support", "Smart TV platform", "Multiple HDMI ports", "Voice remote"},
			Description: "Large screen smart TV with crystal clear picture quality",
		},
		"samsung tv": {
			Name:        "Samsung 65-inch QLED TV",
			Price:       "$1,199",
			Features:    []string{"QLED technology", "8K upscaling", "Voice control", "Gaming mode", "Ambient mode"},
			Description: "Premium TV with quantum dot technology and smart features",
		},
		"tv":  tvSelection,
		"tvs": tvSelection,
	})
}
