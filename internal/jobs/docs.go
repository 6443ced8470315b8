// Package jobs provides scheduled background tasks for the MegaBurger
// backend, implemented with github.com/robfig/cron/v3.
//
// KitchenSimulatorJob stands in for restaurant staff in demo deployments: it
// periodically advances every queued order one kitchen stage so the order
// workflows have something to poll. Production deployments, where staff update
// orders through the HTTP API, run without it.
package jobs
