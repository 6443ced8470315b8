// Package workflows contains the durable order-fulfillment workflows.
//
// OrderWorkflow is the dispatcher a customer starts. It spawns
// MegaBurgerOrderWorkflow to drive the restaurant and, for delivery orders,
// CourierDeliveryWorkflow to drive the courier. Children never share state
// with the parent; they report progress by signaling the parent's workflow
// id, and the parent reacts only to those status values. A child failing is
// therefore invisible to the parent except through the status it signaled
// beforehand.
package workflows
