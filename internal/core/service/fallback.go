package service

import "github.com/zarshop/storefront/internal/core/domain"

// FallbackCatalog is the built-in product dataset served when the
// external catalog store is unreachable. The seeder loads the same
// dataset into the store, so both paths present identical products.
func FallbackCatalog() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Classic White T-Shirt", Category: "Tops",
			Style: "Casual", Price: 29.99,
			Description: "Premium cotton t-shirt with comfortable fit",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Black", "Gray"},
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
		},
		{
			ID: 2, Name: "Slim Fit Denim Jeans", Category: "Bottoms",
			Style: "Casual", Price: 79.99,
			Description: "Classic denim jeans with modern slim fit",
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Colors:      []string{"Blue", "Black"},
			Image:       "https://images.unsplash.com/photo-1542272604-787c3835535d?w=500",
		},
		{
			ID: 3, Name: "Leather Jacket", Category: "Outerwear",
			Style: "Edgy", Price: 199.99,
			Description: "Genuine leather jacket with classic design",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Brown"},
			Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500",
		},
		{
			ID: 4, Name: "Summer Dress", Category: "Dresses",
			Style: "Feminine", Price: 59.99,
			Description: "Light and airy summer dress perfect for warm weather",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Floral", "Blue", "Pink"},
			Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500",
		},
		{
			ID: 5, Name: "Running Shoes", Category: "Shoes",
			Style: "Sporty", Price: 129.99,
			Description: "Comfortable running shoes with excellent support",
			Sizes:       []string{"7", "8", "9", "10", "11", "12"},
			Colors:      []string{"White", "Black", "Red"},
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
		},
		{
			ID: 6, Name: "Formal Blazer", Category: "Outerwear",
			Style: "Professional", Price: 149.99,
			Description: "Elegant blazer for professional occasions",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Navy", "Black", "Gray"},
			Image:       "https://images.unsplash.com/photo-1594938291221-94f313ab01a6?w=500",
		},
		{
			ID: 7, Name: "Yoga Pants", Category: "Bottoms",
			Style: "Athletic", Price: 49.99,
			Description: "Comfortable and flexible yoga pants",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Black", "Gray", "Navy"},
			Image:       "https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=500",
		},
		{
			ID: 8, Name: "Silk Scarf", Category: "Accessories",
			Style: "Elegant", Price: 39.99,
			Description: "Luxurious silk scarf with elegant patterns",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Multicolor", "Blue", "Red"},
			Image:       "https://images.unsplash.com/photo-1583292650898-7d22cd27ca6f?w=500",
		},
		{
			ID: 9, Name: "Wool Coat", Category: "Outerwear",
			Style: "Professional", Price: 249.99,
			Description: "Warm and stylish wool coat for winter",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Gray", "Navy"},
			Image:       "https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=500",
		},
		{
			ID: 10, Name: "Casual Sneakers", Category: "Shoes",
			Style: "Casual", Price: 89.99,
			Description: "Comfortable everyday sneakers",
			Sizes:       []string{"7", "8", "9", "10", "11", "12"},
			Colors:      []string{"White", "Black", "Gray"},
			Image:       "https://images.unsplash.com/photo-1460353581641-37baddab0fa2?w=500",
		},
		{
			ID: 11, Name: "Cargo Pants", Category: "Bottoms",
			Style: "Casual", Price: 69.99,
			Description: "Functional cargo pants with multiple pockets",
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Colors:      []string{"Khaki", "Black", "Olive"},
			Image:       "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=500",
		},
		{
			ID: 12, Name: "Polo Shirt", Category: "Tops",
			Style: "Casual", Price: 39.99,
			Description: "Classic polo shirt for smart casual wear",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Navy", "Red", "Blue"},
			Image:       "https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=500",
		},
		{
			ID: 13, Name: "Maxi Dress", Category: "Dresses",
			Style: "Feminine", Price: 79.99,
			Description: "Elegant maxi dress perfect for any occasion",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Black", "Red", "Blue", "Floral"},
			Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500",
		},
		{
			ID: 14, Name: "Baseball Cap", Category: "Accessories",
			Style: "Casual", Price: 24.99,
			Description: "Classic baseball cap with adjustable strap",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Black", "White", "Navy", "Red"},
			Image:       "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?w=500",
		},
		{
			ID: 15, Name: "Hoodie", Category: "Tops",
			Style: "Casual", Price: 59.99,
			Description: "Comfortable cotton hoodie",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Gray", "Black", "Navy"},
			Image:       "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500",
		},
		{
			ID: 16, Name: "High Heels", Category: "Shoes",
			Style: "Elegant", Price: 99.99,
			Description: "Elegant high heels for formal events",
			Sizes:       []string{"6", "7", "8", "9", "10"},
			Colors:      []string{"Black", "Nude", "Red"},
			Image:       "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=500",
		},
		{
			ID: 17, Name: "Shorts", Category: "Bottoms",
			Style: "Casual", Price: 34.99,
			Description: "Comfortable summer shorts",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Khaki", "Navy", "Black"},
			Image:       "https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=500",
		},
		{
			ID: 18, Name: "Sunglasses", Category: "Accessories",
			Style: "Edgy", Price: 49.99,
			Description: "Stylish sunglasses with UV protection",
			Sizes:       []string{"One Size"},
			Colors:      []string{"Black", "Brown", "Tortoise"},
			Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500",
		},
	}
}
