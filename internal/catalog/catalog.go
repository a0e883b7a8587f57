package catalog

// Product is a diamond bundle offered in the store. Amount is the price in
// the token's smallest unit, kept as a decimal string end to end.
type Product struct {
	ID               string
	Name             string
	IconURL          string
	Diamonds         int
	Amount           string
	Token            string
	Network          string
	RecipientAddress string
	// Test is the sandbox scenario marker ("success", "failure").
	// Empty for production products.
	Test string
}

// Catalog is the static product table. It is built once at startup from the
// configured recipient addresses and never mutated afterwards.
type Catalog struct {
	products     []Product
	testProducts []Product
}

func New(recipientAddress string, testRecipientAddress string) *Catalog {
	return &Catalog{
		products: []Product{
			{
				ID:               "diamonds-10",
				Name:             "Handful of Diamonds",
				IconURL:          "https://static.alien-api.com/miniapp/diamonds-10.png",
				Diamonds:         10,
				Amount:           "1000000",
				Token:            "USDC",
				Network:          "solana",
				RecipientAddress: recipientAddress,
			},
			{
				ID:               "diamonds-50",
				Name:             "Pouch of Diamonds",
				IconURL:          "https://static.alien-api.com/miniapp/diamonds-50.png",
				Diamonds:         50,
				Amount:           "4500000",
				Token:            "USDC",
				Network:          "solana",
				RecipientAddress: recipientAddress,
			},
			{
				ID:               "diamonds-150",
				Name:             "Chest of Diamonds",
				IconURL:          "https://static.alien-api.com/miniapp/diamonds-150.png",
				Diamonds:         150,
				Amount:           "12000000",
				Token:            "USDC",
				Network:          "solana",
				RecipientAddress: recipientAddress,
			},
			{
				ID:               "diamonds-500",
				Name:             "Vault of Diamonds",
				IconURL:          "https://static.alien-api.com/miniapp/diamonds-500.png",
				Diamonds:         500,
				Amount:           "35000000",
				Token:            "USDC",
				Network:          "solana",
				RecipientAddress: recipientAddress,
			},
		},
		testProducts: []Product{
			{
				ID:               "test-diamonds-success",
				Name:             "Test Diamonds (success)",
				IconURL:          "https://static.alien-api.com/miniapp/diamonds-10.png",
				Diamonds:         10,
				Amount:           "10000",
				Token:            "USDC",
				Network:          "solana",
				RecipientAddress: testRecipientAddress,
				Test:             "success",
			},
			{
				ID:               "test-diamonds-failure",
				Name:             "Test Diamonds (failure)",
				IconURL:          "https://static.alien-api.com/miniapp/diamonds-10.png",
				Diamonds:         10,
				Amount:           "10000",
				Token:            "USDC",
				Network:          "solana",
				RecipientAddress: testRecipientAddress,
				Test:             "failure",
			},
		},
	}
}

// Find searches the production list first, then the sandbox list.
func (c *Catalog) Find(productID string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == productID {
			return p, true
		}
	}
	for _, p := range c.testProducts {
		if p.ID == productID {
			return p, true
		}
	}
	return Product{}, false
}

func (c *Catalog) Products() []Product {
	return c.products
}

func (c *Catalog) TestProducts() []Product {
	return c.testProducts
}
