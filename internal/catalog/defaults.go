package catalog

// Prices are in rupiah.

var defaultServices = []Service{
	{ID: "ringan", Name: "Servis Ringan", Price: 75000},
	{ID: "lengkap", Name: "Servis Lengkap", Price: 150000},
	{ID: "turun-mesin", Name: "Servis Turun Mesin (Setengah)", Price: 500000},
	{ID: "cvt", Name: "Servis CVT Matic", Price: 85000},
	{ID: "injeksi", Name: "Servis Injeksi", Price: 120000},
}

var defaultDifficultyLevels = []DifficultyLevel{
	{ID: "mudah", Name: "Mudah / Tanpa Kesulitan", Multiplier: 0},
	{ID: "sedang", Name: "Sedang", Multiplier: 0.15},
	{ID: "sulit", Name: "Sulit", Multiplier: 0.30},
	{ID: "sangat-sulit", Name: "Sangat Sulit / Custom", Multiplier: 0.50},
}

// Default returns the compiled-in workshop catalog.
func Default() *Catalog {
	c, err := New(defaultServices, defaultDifficultyLevels)
	if err != nil {
		panic("catalog: invalid compiled-in catalog: " + err.Error())
	}
	return c
}
