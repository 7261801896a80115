// Package sweep orchestrates the account-wide lifecycle sweep: it walks
// every bucket, groups buckets by region, and ensures each one carries a
// lifecycle rule that aborts incomplete multipart uploads.
package sweep

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/bucketops/mpusweep/internal/config"
	"github.com/bucketops/mpusweep/internal/lifecycle"
)

// ObjectStore is the S3 surface the sweep needs.
type ObjectStore interface {
	ListBuckets(ctx context.Context) ([]string, error)
	BucketRegion(ctx context.Context, bucket string) (string, error)
	LifecycleRules(ctx context.Context, bucket string) ([]types.LifecycleRule, error)
	PutLifecycleRules(ctx context.Context, bucket string, rules []types.LifecycleRule) error
}

// RegionChecker reports whether a region is opt-in.
type RegionChecker interface {
	IsOptInRegion(ctx context.Context, region string) (bool, error)
}

// StoreFactory returns an ObjectStore bound to a regional endpoint.
type StoreFactory func(ctx context.Context, region string) (ObjectStore, error)

// Sweeper walks all buckets in the account and ensures the abort rule.
type Sweeper struct {
	store   ObjectStore
	regions RegionChecker
	factory StoreFactory
	cfg     *config.Config
}

// New creates a Sweeper. The store is the default-region client; the
// factory builds regional clients for opt-in regions.
func New(store ObjectStore, regions RegionChecker, factory StoreFactory, cfg *config.Config) *Sweeper {
	return &Sweeper{
		store:   store,
		regions: regions,
		factory: factory,
		cfg:     cfg,
	}
}

// Run sweeps the account. Per-bucket API errors are recorded as failed
// outcomes and the sweep continues; only a failed bucket enumeration aborts
// the run. With dryRun no configuration is written.
func (s *Sweeper) Run(ctx context.Context, dryRun bool) (*Report, error) {
	report := &Report{
		RuleID: s.cfg.EffectiveRuleID(),
		Days:   s.cfg.Days,
		DryRun: dryRun,
	}

	names, err := s.store.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}

	byRegion := make(map[string][]string)
	for _, name := range names {
		if s.cfg.IsExcluded(name) {
			report.add(Outcome{
				Bucket: name,
				Action: ActionExcluded,
				Detail: "listed in exclude_buckets",
			})
			continue
		}
		region, err := s.store.BucketRegion(ctx, name)
		if err != nil {
			report.add(Outcome{Bucket: name, Action: ActionFailed, Detail: err.Error()})
			continue
		}
		byRegion[region] = append(byRegion[region], name)
	}

	regions := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		store, err := s.storeFor(ctx, region)
		if err != nil {
			for _, name := range byRegion[region] {
				report.add(Outcome{Bucket: name, Region: region, Action: ActionFailed, Detail: err.Error()})
			}
			continue
		}
		for _, name := range byRegion[region] {
			report.add(s.ensureBucket(ctx, store, region, name, dryRun))
		}
	}

	sort.Slice(report.Buckets, func(i, j int) bool {
		return report.Buckets[i].Bucket < report.Buckets[j].Bucket
	})

	return report, nil
}

// storeFor returns the client to use for a region. Opt-in regions can only
// be reached through regional endpoints; everything else goes through the
// default client.
func (s *Sweeper) storeFor(ctx context.Context, region string) (ObjectStore, error) {
	optIn, err := s.regions.IsOptInRegion(ctx, region)
	if err != nil {
		return nil, err
	}
	if !optIn {
		return s.store, nil
	}
	return s.factory(ctx, region)
}

// ensureBucket appends the abort rule to a single bucket unless an
// equivalent rule already exists. Existing rules are always preserved.
func (s *Sweeper) ensureBucket(ctx context.Context, store ObjectStore, region, name string, dryRun bool) Outcome {
	outcome := Outcome{Bucket: name, Region: region}

	rules, err := store.LifecycleRules(ctx, name)
	if err != nil {
		outcome.Action = ActionFailed
		outcome.Detail = err.Error()
		return outcome
	}

	if lifecycle.HasAbortAction(rules) {
		days, _ := lifecycle.AbortDays(rules)
		outcome.Action = ActionSkipped
		outcome.Detail = fmt.Sprintf("already aborts incomplete multipart uploads after %d days", days)
		return outcome
	}

	ruleID := s.cfg.EffectiveRuleID()
	if lifecycle.HasRuleID(rules, ruleID) {
		outcome.Action = ActionSkipped
		outcome.Detail = fmt.Sprintf("rule %q already present", ruleID)
		return outcome
	}

	next := append(rules, lifecycle.NewAbortRule(ruleID, s.cfg.Days))

	if dryRun {
		outcome.Action = ActionWouldUpdate
		outcome.Detail = fmt.Sprintf("would append rule %q", ruleID)
		return outcome
	}

	if err := store.PutLifecycleRules(ctx, name, next); err != nil {
		outcome.Action = ActionFailed
		outcome.Detail = err.Error()
		return outcome
	}

	outcome.Action = ActionUpdated
	outcome.Detail = fmt.Sprintf("appended rule %q", ruleID)
	return outcome
}
