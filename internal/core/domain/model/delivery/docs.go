// Package delivery contains the courier-delivery domain model: the delivery
// job handed to a courier and the courier-side status machine that drives the
// courier workflow.
package delivery
