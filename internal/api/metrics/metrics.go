// Package metrics defines and registers all custom Prometheus metrics for the
// task-tracking API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tasktracker"

// TasksCreatedTotal counts created tasks.
// Label:
//   - status: the initial status the task was created with
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by initial status.",
	},
	[]string{"status"},
)

// TaskStatusUpdatesTotal counts applied status transitions. No-op rewrites of
// the current status are not counted.
// Label:
//   - status: the new status written
var TaskStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_status_updates_total",
		Help:      "Total number of task status updates applied, by new status.",
	},
	[]string{"status"},
)

// TaskTagUpdatesTotal counts tag writes.
var TaskTagUpdatesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_tag_updates_total",
		Help:      "Total number of task tag updates applied.",
	},
)

// CommentsTotal counts comment lifecycle operations.
// Label:
//   - action: "created", "edited" or "deleted"
var CommentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_total",
		Help:      "Total number of comment operations, by action.",
	},
	[]string{"action"},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "failure" or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// AuthzDenialsTotal counts authorization denials issued by the decision
// functions.
// Labels:
//   - action: the denied operation (e.g. "create_task", "update_status")
//   - reason: the decision's reason code
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of authorization denials, by action and reason.",
	},
	[]string{"action", "reason"},
)
