package bookstore

import "github.com/robinsingh-ai/library-api/internal/entities"

// SeedBooks returns the sample catalog used to initialize an empty data file.
func SeedBooks() []entities.Book {
	return []entities.Book{
		{
			ID:            "1",
			ISBN:          "9780061120084",
			Title:         "To Kill a Mockingbird",
			Author:        "Harper Lee",
			Genre:         "Fiction",
			YearPublished: 1960,
		},
		{
			ID:            "2",
			ISBN:          "9780451524935",
			Title:         "1984",
			Author:        "George Orwell",
			Genre:         "Dystopian",
			YearPublished: 1949,
		},
		{
			ID:            "3",
			ISBN:          "9780743273565",
			Title:         "The Great Gatsby",
			Author:        "F. Scott Fitzgerald",
			Genre:         "Classic",
			YearPublished: 1925,
		},
	}
}
