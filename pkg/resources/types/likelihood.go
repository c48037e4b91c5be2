package types

// Likelihood ranks how confident a field is that it serves as the resource
// key. Explicit outranks any implicit score, implicit scores are compared by
// magnitude, and none never outranks anything.
type Likelihood struct {
	kind  likelihoodKind
	score int
}

type likelihoodKind int

const (
	likelihoodNone likelihoodKind = iota
	likelihoodImplicit
	likelihoodExplicit
)

func ExplicitLikelihood() Likelihood {
	return Likelihood{kind: likelihoodExplicit}
}

func ImplicitLikelihood(score int) Likelihood {
	return Likelihood{kind: likelihoodImplicit, score: score}
}

func NoLikelihood() Likelihood {
	return Likelihood{}
}

func (l Likelihood) IsExplicit() bool {
	return l.kind == likelihoodExplicit
}

func (l Likelihood) IsNone() bool {
	return l.kind == likelihoodNone
}

func (l Likelihood) Score() int {
	if l.kind == likelihoodImplicit {
		return l.score
	}
	return 0
}

// Outranks reports whether l is strictly more confident than other. Equal
// likelihoods do not outrank each other, so the first of two equals wins.
func (l Likelihood) Outranks(other Likelihood) bool {
	if l.kind != other.kind {
		return l.kind > other.kind
	}

	if l.kind == likelihoodImplicit {
		return l.score > other.score
	}

	return false
}
