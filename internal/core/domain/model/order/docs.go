// Package order contains the food-order domain model: the order lifecycle
// status state machine shared by the dispatcher, restaurant and courier
// workflows, and the FoodOrder value object placed by customers.
//
// Status values are plain strings matching the restaurant backend's wire
// format so the same constants flow unchanged through workflow signals,
// queries and the HTTP API.
package order
