package entities

// ShippingProfile overrides the product's own weight and size for billing.
type ShippingProfile struct {
	WeightGrams           int64
	VolumetricWeightGrams int64
	LongestSideCm         int64
	CategoryExtra         int64
}

type Product struct {
	ID          string
	SKU         string
	Name        string
	Price       int64
	WeightGrams int64
	LengthCm    int64
	WidthCm     int64
	HeightCm    int64
	CategoryID  string
	Profile     *ShippingProfile
}

// ProductResolution is the catalog's answer for one ref: Found or not.
type ProductResolution struct {
	Found   bool
	Product Product
}

func Found(p Product) ProductResolution {
	return ProductResolution{Found: true, Product: p}
}

func NotFound() ProductResolution {
	return ProductResolution{}
}

type Buyer struct {
	ID    string
	Name  string
	Email string
	Phone string
}

type ShippingZone struct {
	ID             string
	Name           string
	BaseFee        int64
	PerKgFee       int64
	FreeThreshold  *int64
	HomeDelivery   bool
	PostalPrefixes []string
	Districts      []string
}
