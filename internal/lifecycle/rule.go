// Package lifecycle builds and inspects the S3 lifecycle rules used to
// expire incomplete multipart uploads.
package lifecycle

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// DefaultDays is the default number of days after initiation before an
// incomplete multipart upload is aborted.
const DefaultDays = 7

// RuleID returns the rule identifier for a given day count,
// e.g. "delete-incomplete-mpu-7days".
func RuleID(days int32) string {
	return fmt.Sprintf("delete-incomplete-mpu-%ddays", days)
}

// NewAbortRule builds an enabled lifecycle rule that aborts incomplete
// multipart uploads after the given number of days. The empty prefix filter
// applies the rule to the whole bucket.
func NewAbortRule(id string, days int32) types.LifecycleRule {
	return types.LifecycleRule{
		ID:     aws.String(id),
		Status: types.ExpirationStatusEnabled,
		Filter: &types.LifecycleRuleFilter{
			Prefix: aws.String(""),
		},
		AbortIncompleteMultipartUpload: &types.AbortIncompleteMultipartUpload{
			DaysAfterInitiation: aws.Int32(days),
		},
	}
}

// HasAbortAction reports whether any rule carries an
// AbortIncompleteMultipartUpload action. Rule status is not considered;
// a disabled rule still counts as coverage the tool must not duplicate.
func HasAbortAction(rules []types.LifecycleRule) bool {
	for _, rule := range rules {
		if rule.AbortIncompleteMultipartUpload != nil {
			return true
		}
	}
	return false
}

// HasRuleID reports whether a rule with the given ID already exists.
func HasRuleID(rules []types.LifecycleRule, id string) bool {
	for _, rule := range rules {
		if rule.ID != nil && *rule.ID == id {
			return true
		}
	}
	return false
}

// AbortDays returns the DaysAfterInitiation of the first rule carrying an
// abort action, and whether such a rule exists.
func AbortDays(rules []types.LifecycleRule) (int32, bool) {
	for _, rule := range rules {
		if rule.AbortIncompleteMultipartUpload != nil {
			return aws.ToInt32(rule.AbortIncompleteMultipartUpload.DaysAfterInitiation), true
		}
	}
	return 0, false
}
