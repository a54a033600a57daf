package models

type WeekdaySales struct {
	Weekday      string    `json:"weekday"`
	StoreType    StoreType `json:"store_type"`
	Transactions int       `json:"transactions"`
	Revenue      float64   `json:"revenue"`
}

type AgeCount struct {
	StoreType StoreType `json:"store_type"`
	Age       int       `json:"age"`
	Customers int       `json:"customers"`
}

type AgeBin struct {
	StoreType StoreType `json:"store_type"`
	From      int       `json:"from"`
	To        int       `json:"to"`
	Customers int       `json:"customers"`
}

type CategorySales struct {
	Category     string    `json:"category"`
	Subcategory  string    `json:"subcategory"`
	StoreType    StoreType `json:"store_type"`
	Revenue      float64   `json:"revenue"`
	Quantity     int       `json:"quantity"`
	Transactions int       `json:"transactions"`
}
