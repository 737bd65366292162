package catalog

// ProductFilter narrows a catalog listing; zero values match everything
type ProductFilter struct {
	Name     string
	Category string
	Price    PriceRange
}

// CategoryAggregate summarizes the non-deleted products of one category. Price fields are
// nil when no product in the category has a price.
type CategoryAggregate struct {
	Category     string
	Count        int64
	AveragePrice *float64
	MinPrice     *float64
	MaxPrice     *float64
}
