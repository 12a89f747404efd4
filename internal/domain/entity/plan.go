package entity

// Plan is a subscription tier held through the identity provider
type Plan string

// Subscription plans
const (
	PlanFree     Plan = "free_user"
	PlanStandard Plan = "standard"
	PlanPremium  Plan = "premium"
)

// AppointmentCost is the fixed number of credits one appointment moves from patient to doctor
const AppointmentCost int64 = 2

var planCredits = map[Plan]int64{
	PlanFree:     0,
	PlanStandard: 10,
	PlanPremium:  24,
}

// PlansByPriority is the order plans are probed in when a principal may hold several
var PlansByPriority = []Plan{PlanPremium, PlanStandard, PlanFree}

// MonthlyCredits returns the allowance granted once per billing period
func (p Plan) MonthlyCredits() int64 {
	return planCredits[p]
}

// IsValid reports whether p is a known plan
func (p Plan) IsValid() bool {
	_, ok := planCredits[p]
	return ok
}

func (p Plan) String() string {
	return string(p)
}
