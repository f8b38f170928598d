// Package beliefmdp builds the belief-MDP transition entries consumed by
// the value-iteration driver and the strategy extractor: given a grid (or
// arbitrary) belief and an action, the distribution over successor beliefs
// induced by one step of the underlying POMDP's dynamics, partitioned by
// next observation.
//
// Build is a pure function of (model, belief, action): it caches nothing
// and owns no state, leaving caching policy to its callers.
package beliefmdp
