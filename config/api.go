package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public storefront reads; admin reference/import writes stay behind auth
	return []string{
		"/api/catalog/products",
		"/api/catalog/products/:id/card",
		"/api/catalog/facets",
		"/api/catalog/search",
	}
}
