package http

import (
	"time"

	"github.com/Betojr04/E-commerceAPI/internal/commerce/domain"
)

// Transport shapes. Relationship fields serialize as id lists: a user's
// orders and an order's products.

type User struct {
	Id     int64   `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Orders []int64 `json:"orders"`
}

type Category struct {
	Id           int64  `json:"id"`
	CategoryName string `json:"category_name"`
}

type Product struct {
	Id          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	CategoryId  int64   `json:"category_id"`
}

type Order struct {
	Id        int64     `json:"id"`
	OrderDate time.Time `json:"order_date"`
	UserId    int64     `json:"user_id"`
	Products  []int64   `json:"products"`
}

func fromDomainUser(user *domain.User) User {
	orders := user.OrderIDs
	if orders == nil {
		orders = []int64{}
	}
	return User{Id: user.ID, Name: user.Name, Email: user.Email, Orders: orders}
}

func fromDomainUsers(users []*domain.User) []User {
	result := make([]User, 0, len(users))
	for _, user := range users {
		result = append(result, fromDomainUser(user))
	}
	return result
}

func fromDomainCategory(category *domain.Category) Category {
	return Category{Id: category.ID, CategoryName: category.Name}
}

func fromDomainCategories(categories []*domain.Category) []Category {
	result := make([]Category, 0, len(categories))
	for _, category := range categories {
		result = append(result, fromDomainCategory(category))
	}
	return result
}

func fromDomainProduct(product *domain.Product) Product {
	return Product{
		Id:          product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		CategoryId:  product.CategoryID,
	}
}

func fromDomainProducts(products []*domain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, fromDomainProduct(product))
	}
	return result
}

func fromDomainOrder(order *domain.Order) Order {
	products := order.ProductIDs
	if products == nil {
		products = []int64{}
	}
	return Order{Id: order.ID, OrderDate: order.OrderDate, UserId: order.UserID, Products: products}
}

func fromDomainOrders(orders []*domain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, fromDomainOrder(order))
	}
	return result
}
