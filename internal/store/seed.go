package store

// Default catalog and order book, used only when the corresponding storage
// slot has never been written.

func seedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Classic Cuban Link Chain",
			Description: "Vintage 14K gold Cuban link chain. Perfect weight and shine. Pre-owned in excellent condition.",
			Price:       1299,
			Category:    CategoryChain,
			ImageURL:    "https://images.unsplash.com/photo-1762505464962-4c7b93dcc8d4?w=1080",
			Stock:       1,
			Featured:    true,
		},
		{
			ID:          "2",
			Name:        "Diamond Solitaire Engagement Ring",
			Description: "1.5ct round brilliant diamond set in platinum. GIA certified, VS1 clarity, G color. Stunning custom piece.",
			Price:       8999,
			Category:    CategoryRing,
			ImageURL:    "https://images.unsplash.com/photo-1584568499702-823d980e875f?w=1080",
			Stock:       1,
			Featured:    true,
		},
		{
			ID:          "3",
			Name:        "Delicate Gold Necklace",
			Description: "Minimal and elegant 18K gold necklace perfect for everyday wear or layering.",
			Price:       449,
			Category:    CategoryChain,
			ImageURL:    "https://images.unsplash.com/photo-1625792508300-0e1f913a3a50?w=1080",
			Stock:       3,
		},
		{
			ID:          "4",
			Name:        "Halo Diamond Engagement Ring",
			Description: "Custom 2ct center stone surrounded by pave diamonds. 14K white gold setting. Made to order.",
			Price:       12999,
			Category:    CategoryRing,
			ImageURL:    "https://images.unsplash.com/photo-1742240439165-60790db1ee93?w=1080",
			Stock:       0,
			Featured:    true,
		},
		{
			ID:          "5",
			Name:        "Diamond Tennis Bracelet",
			Description: "Classic tennis bracelet with 5ctw diamonds. 14K white gold setting. Timeless elegance.",
			Price:       6499,
			Category:    CategoryBracelet,
			ImageURL:    "https://images.unsplash.com/photo-1655707063513-a08dad26440e?w=1080",
			Stock:       2,
		},
		{
			ID:          "6",
			Name:        "Herringbone Gold Chain",
			Description: "Premium 18K gold herringbone chain. Smooth, luxurious, and perfectly weighted.",
			Price:       1899,
			Category:    CategoryChain,
			ImageURL:    "https://images.unsplash.com/photo-1767921804162-9c55a278768d?w=1080",
			Stock:       1,
		},
	}
}

func seedOrders() []Order {
	return []Order{
		{
			ID:            "ORD-001",
			CustomerName:  "John Smith",
			CustomerEmail: "john@example.com",
			Items: []OrderItem{
				{ProductID: "1", ProductName: "Classic Cuban Link Chain", Quantity: 1, Price: 1299},
			},
			Total:           1299,
			Status:          OrderProcessing,
			Date:            "2026-02-08",
			ShippingAddress: "123 Main St, Los Angeles, CA 90001",
		},
		{
			ID:            "ORD-002",
			CustomerName:  "Sarah Johnson",
			CustomerEmail: "sarah@example.com",
			Items: []OrderItem{
				{ProductID: "3", ProductName: "Delicate Gold Necklace", Quantity: 2, Price: 349},
			},
			Total:           698,
			Status:          OrderShipped,
			Date:            "2026-02-06",
			ShippingAddress: "456 Oak Ave, New York, NY 10001",
		},
		{
			ID:            "ORD-003",
			CustomerName:  "Mike Davis",
			CustomerEmail: "mike@example.com",
			Items: []OrderItem{
				{ProductID: "5", ProductName: "Gold Link Bracelet", Quantity: 1, Price: 749},
			},
			Total:           749,
			Status:          OrderPending,
			Date:            "2026-02-10",
			ShippingAddress: "789 Pine Rd, Miami, FL 33101",
		},
	}
}
