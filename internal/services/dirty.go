package services

// DirtySet names the aggregate ids a mutation touched, so read-side views
// know exactly what to refresh instead of recomputing everything.
type DirtySet struct {
	AccountIDs []string `json:"account_ids,omitempty"`
	BudgetIDs  []string `json:"budget_ids,omitempty"`
	GoalIDs    []string `json:"goal_ids,omitempty"`
	BillIDs    []string `json:"bill_ids,omitempty"`
	DebtIDs    []string `json:"debt_ids,omitempty"`
}

// NewDirtySet creates an empty dirty set.
func NewDirtySet() *DirtySet {
	return &DirtySet{}
}

func appendUnique(ids []string, id string) []string {
	if id == "" {
		return ids
	}
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// AddAccount marks an account as touched.
func (d *DirtySet) AddAccount(id string) { d.AccountIDs = appendUnique(d.AccountIDs, id) }

// AddBudget marks a budget as touched.
func (d *DirtySet) AddBudget(id string) { d.BudgetIDs = appendUnique(d.BudgetIDs, id) }

// AddGoal marks a goal as touched.
func (d *DirtySet) AddGoal(id string) { d.GoalIDs = appendUnique(d.GoalIDs, id) }

// AddBill marks a bill as touched.
func (d *DirtySet) AddBill(id string) { d.BillIDs = appendUnique(d.BillIDs, id) }

// AddDebt marks a debt as touched.
func (d *DirtySet) AddDebt(id string) { d.DebtIDs = appendUnique(d.DebtIDs, id) }
