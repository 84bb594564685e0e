package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 注文まわりのカウンタ。/metricsで公開する。
var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sweetshop_orders_placed_total",
		Help: "Number of orders successfully placed.",
	})

	DeliveriesConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sweetshop_deliveries_confirmed_total",
		Help: "Number of orders confirmed as delivered.",
	})

	OutOfStockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sweetshop_out_of_stock_rejections_total",
		Help: "Number of order placements rejected because an item was out of stock.",
	})
)
