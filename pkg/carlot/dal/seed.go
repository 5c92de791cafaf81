package dal

// CarsDataset is the dealership stock listed on the site
var CarsDataset = []Car{
	{
		ID:       1,
		Name:     "Toyota Prado",
		Price:    "Ksh 4,200,000",
		Image:    "https://images.pexels.com/photos/34166839/pexels-photo-34166839.jpeg",
		Category: CategorySUV,
		Year:     "2021",
		Mileage:  "45,000 km",
		Engine:   "3.0L Diesel",
		Badge:    "Premium",
	},
	{
		ID:       2,
		Name:     "Mercedes C200",
		Price:    "Ksh 2,650,000",
		Image:    "https://images.pexels.com/photos/3778776/pexels-photo-3778776.jpeg",
		Category: CategoryLuxury,
		Year:     "2022",
		Mileage:  "28,000 km",
		Engine:   "2.0L Turbo",
		Badge:    "Luxury",
	},
	{
		ID:       3,
		Name:     "Subaru Forester",
		Price:    "Ksh 1,850,000",
		Image:    "https://images.pexels.com/photos/30454655/pexels-photo-30454655.jpeg",
		Category: CategorySUV,
		Year:     "2020",
		Mileage:  "32,000 km",
		Engine:   "2.5L Boxer",
		Badge:    "Best Value",
	},
	{
		ID:       4,
		Name:     "BMW X5",
		Price:    "Ksh 5,800,000",
		Image:    "https://images.pexels.com/photos/7154531/pexels-photo-7154531.jpeg",
		Category: CategoryLuxury,
		Year:     "2023",
		Mileage:  "15,000 km",
		Engine:   "3.0L Turbo",
		Badge:    "Premium",
	},
	{
		ID:       5,
		Name:     "Toyota Hilux",
		Price:    "Ksh 3,200,000",
		Image:    "https://images.pexels.com/photos/19143603/pexels-photo-19143603.jpeg",
		Category: CategorySUV,
		Year:     "2021",
		Mileage:  "38,000 km",
		Engine:   "2.8L Diesel",
		Badge:    "Popular",
	},
	{
		ID:       6,
		Name:     "Porsche 911",
		Price:    "Ksh 12,500,000",
		Image:    "https://images.unsplash.com/photo-1503376780353-7e6692767b70?ixlib=rb-4.0.3&auto=format&fit=crop&w=300&q=80",
		Category: CategoryPerformance,
		Year:     "2022",
		Mileage:  "8,500 km",
		Engine:   "3.0L Twin-Turbo",
		Badge:    "Exclusive",
	},
	{
		ID:       7,
		Name:     "Honda Civic",
		Price:    "Ksh 2,100,000",
		Image:    "https://images.pexels.com/photos/17357663/pexels-photo-17357663.jpeg",
		Category: CategorySedan,
		Year:     "2021",
		Mileage:  "25,000 km",
		Engine:   "1.5L Turbo",
		Badge:    "Fuel Efficient",
	},
	{
		ID:       8,
		Name:     "Range Rover Sport",
		Price:    "Ksh 8,900,000",
		Image:    "https://images.pexels.com/photos/28496683/pexels-photo-28496683.jpeg",
		Category: CategoryLuxury,
		Year:     "2022",
		Mileage:  "22,000 km",
		Engine:   "3.0L Diesel",
		Badge:    "Luxury",
	},
}

// Seed returns the catalog built from CarsDataset.
func Seed() Catalog {
	return NewCatalog(CarsDataset...)
}
