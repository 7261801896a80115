package sweep

// Action classifies what the sweep did (or would do) to a bucket.
type Action string

const (
	// ActionUpdated means the rule was appended and written back.
	ActionUpdated Action = "updated"
	// ActionWouldUpdate means a dry run found the bucket uncovered.
	ActionWouldUpdate Action = "would-update"
	// ActionSkipped means the bucket already carries an equivalent rule.
	ActionSkipped Action = "skipped"
	// ActionExcluded means the bucket is on the exclusion list.
	ActionExcluded Action = "excluded"
	// ActionFailed means an API call for this bucket failed.
	ActionFailed Action = "failed"
)

// Outcome is the per-bucket sweep result.
type Outcome struct {
	Bucket string `json:"bucket"`
	Region string `json:"region,omitempty"`
	Action Action `json:"action"`
	Detail string `json:"detail,omitempty"`
}

// Report is the result of a full sweep.
type Report struct {
	RuleID  string    `json:"ruleId"`
	Days    int32     `json:"days"`
	DryRun  bool      `json:"dryRun,omitempty"`
	Buckets []Outcome `json:"buckets"`
}

func (r *Report) add(o Outcome) {
	r.Buckets = append(r.Buckets, o)
}

// Count returns the number of buckets with the given action.
func (r *Report) Count(action Action) int {
	n := 0
	for _, o := range r.Buckets {
		if o.Action == action {
			n++
		}
	}
	return n
}

// Uncovered returns the number of buckets found missing the rule during a
// dry run.
func (r *Report) Uncovered() int {
	return r.Count(ActionWouldUpdate)
}
