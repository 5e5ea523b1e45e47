package admins

import (
	"github.com/wesleycpo2/spacered-sub000/alerts"
	"github.com/wesleycpo2/spacered-sub000/collector"
)

var (
	collectorService *collector.Service
	dispatcher       *alerts.Dispatcher
	autoCollector    *collector.AutoCollector
)

// Setup injects the long-lived services the admin handlers operate on.
// Called once from main before the router is built.
func Setup(svc *collector.Service, d *alerts.Dispatcher, ac *collector.AutoCollector) {
	collectorService = svc
	dispatcher = d
	autoCollector = ac
}
