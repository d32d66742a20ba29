// Package capability хранит матрицу прав на операции сопровождения.
// Роль проставляется внешним слоем аутентификации, обработчики проверяют
// только возможность, а не строку роли.
package capability

type Capability string

const (
	TrackingInitialize Capability = "tracking.initialize"
	TrackingView       Capability = "tracking.view"
	TrackingCancel     Capability = "tracking.cancel"
	CheckpointVerify   Capability = "checkpoint.verify"
	OTCGenerate        Capability = "otc.generate"
	OTCVerify          Capability = "otc.verify"
	IssueReport        Capability = "issue.report"
	TamperReport       Capability = "tamper.report"
	PackageCreate      Capability = "package.create"
	PackageScan        Capability = "package.scan"
)

const (
	RoleAdmin          = "admin"
	RoleDispatcher     = "dispatcher"
	RoleDriver         = "driver"
	RoleDepotManager   = "depot_manager"
	RoleOutletOperator = "outlet_operator"
)

var roleCapabilities = map[string]map[Capability]struct{}{
	RoleAdmin: caps(
		TrackingInitialize, TrackingView, TrackingCancel,
		CheckpointVerify, OTCGenerate, OTCVerify,
		IssueReport, TamperReport, PackageCreate, PackageScan,
	),
	RoleDispatcher: caps(
		TrackingInitialize, TrackingView, TrackingCancel, PackageScan,
	),
	RoleDriver: caps(
		TrackingView, CheckpointVerify, OTCGenerate, OTCVerify,
		IssueReport, TamperReport, PackageScan,
	),
	RoleDepotManager: caps(
		TrackingView, PackageCreate, PackageScan, TamperReport, IssueReport,
	),
	RoleOutletOperator: caps(
		TrackingView, OTCGenerate, OTCVerify, IssueReport, TamperReport, PackageScan,
	),
}

// Allowed сообщает, может ли роль выполнить операцию. Неизвестная роль не может ничего.
func Allowed(role string, c Capability) bool {
	set, ok := roleCapabilities[role]
	if !ok {
		return false
	}
	_, ok = set[c]
	return ok
}

func caps(list ...Capability) map[Capability]struct{} {
	set := make(map[Capability]struct{}, len(list))
	for _, c := range list {
		set[c] = struct{}{}
	}
	return set
}
