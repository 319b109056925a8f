package ec

import "math/rand"

// DefaultSelector selects the entire population as parents.
type DefaultSelector struct{}

func (DefaultSelector) Select(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error) {
	return population, nil
}

// TruncationSelector selects the Num best individuals.
type TruncationSelector struct {
	Num int
}

func (s TruncationSelector) Select(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error) {
	num := s.Num
	if num <= 0 || num > len(population) {
		num = len(population)
	}
	pool := append([]*Individual(nil), population...)
	SortBestToWorst(pool)
	return pool[:num], nil
}

// UniformSelector selects Num individuals uniformly at random, with
// replacement.
type UniformSelector struct {
	Num int
}

func (s UniformSelector) Select(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error) {
	num := s.Num
	if num <= 0 {
		num = 1
	}
	selected := make([]*Individual, num)
	for i := range selected {
		selected[i] = population[r.Intn(len(population))]
	}
	return selected, nil
}

// FitnessProportionateSelector performs roulette-wheel selection over
// scalar fitness values. Values are shifted so the worst individual
// has zero weight, which also makes the selector usable for
// minimization runs.
type FitnessProportionateSelector struct {
	Num int
}

func (s FitnessProportionateSelector) Select(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error) {
	num := s.Num
	if num <= 0 {
		num = 1
	}
	if len(population) == 0 {
		return nil, nil
	}
	values := ScalarValues(population)
	if len(values) != len(population) {
		// Non-scalar fitness: fall back to uniform sampling.
		return UniformSelector{Num: num}.Select(r, population, args)
	}

	worst := Worst(population)
	worstValue, _ := ScalarValue(worst.Fitness)
	weights := make([]float64, len(population))
	var total float64
	for i, ind := range population {
		v, _ := ScalarValue(ind.Fitness)
		w := v - worstValue
		if !ind.Fitness.(Scalar).Maximize {
			w = worstValue - v
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return UniformSelector{Num: num}.Select(r, population, args)
	}

	selected := make([]*Individual, 0, num)
	for len(selected) < num {
		pick := r.Float64() * total
		var cum float64
		chosen := population[len(population)-1]
		for i, w := range weights {
			cum += w
			if pick < cum {
				chosen = population[i]
				break
			}
		}
		selected = append(selected, chosen)
	}
	return selected, nil
}

// RankSelector performs roulette-wheel selection where an individual's
// weight is its rank (worst gets 1), so only relative order matters.
// A non-positive Num selects as many parents as the population holds.
type RankSelector struct {
	Num int
}

func (s RankSelector) Select(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error) {
	num := s.Num
	if num <= 0 {
		num = len(population)
	}
	pool := append([]*Individual(nil), population...)
	SortWorstToBest(pool)

	n := len(pool)
	total := float64(n*(n+1)) / 2
	selected := make([]*Individual, 0, num)
	for len(selected) < num {
		pick := r.Float64() * total
		var cum float64
		chosen := pool[n-1]
		for i := 0; i < n; i++ {
			cum += float64(i + 1)
			if pick < cum {
				chosen = pool[i]
				break
			}
		}
		selected = append(selected, chosen)
	}
	return selected, nil
}

// TournamentSelector selects Num individuals, each as the winner of a
// tournament among TournamentSize randomly sampled individuals
// (without replacement within one tournament). A non-positive Num
// selects as many parents as the population holds.
type TournamentSelector struct {
	Num            int
	TournamentSize int
}

func (s TournamentSelector) Select(r *rand.Rand, population []*Individual, args Args) ([]*Individual, error) {
	num := s.Num
	if num <= 0 {
		num = len(population)
	}
	size := s.TournamentSize
	if size <= 0 {
		size = 2
	}
	if size > len(population) {
		size = len(population)
	}

	selected := make([]*Individual, 0, num)
	for len(selected) < num {
		perm := r.Perm(len(population))
		winner := population[perm[0]]
		for _, idx := range perm[1:size] {
			if population[idx].BetterThan(winner) {
				winner = population[idx]
			}
		}
		selected = append(selected, winner)
	}
	return selected, nil
}
