package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

// treeNode is one node of an exported decision tree. Internal nodes carry a
// feature index and threshold with left/right child offsets; leaves carry
// only a class label.
type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Leaf      string  `json:"leaf,omitempty"`
}

type tree struct {
	Nodes []treeNode `json:"nodes"`
}

// Forest is a decision-tree ensemble loaded from an exported model artifact.
// Classification is a majority vote across trees, with ties broken by the
// class order declared in the artifact, so results are deterministic.
type Forest struct {
	featureNames []string
	classes      []Category
	trees        []tree
}

type forestArtifact struct {
	Features []string   `json:"features"`
	Classes  []Category `json:"classes"`
	Trees    []tree     `json:"trees"`
}

// LoadForest reads a forest artifact from disk. Any load failure — missing
// file, bad JSON, or an artifact that fails structural validation — is
// reported as ErrModelUnavailable.
func LoadForest(path string) (*Forest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrModelUnavailable, path, err)
	}

	var art forestArtifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrModelUnavailable, path, err)
	}

	f := &Forest{
		featureNames: art.Features,
		classes:      art.Classes,
		trees:        art.Trees,
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return f, nil
}

func (f *Forest) validate() error {
	if len(f.featureNames) == 0 {
		return fmt.Errorf("artifact declares no features")
	}
	if len(f.classes) == 0 {
		return fmt.Errorf("artifact declares no classes")
	}
	if len(f.trees) == 0 {
		return fmt.Errorf("artifact contains no trees")
	}
	for ti, tr := range f.trees {
		if len(tr.Nodes) == 0 {
			return fmt.Errorf("tree %d is empty", ti)
		}
		for ni, n := range tr.Nodes {
			if n.Leaf != "" {
				if !validCategory(f.classes, Category(n.Leaf)) {
					return fmt.Errorf("tree %d node %d: unknown class %q", ti, ni, n.Leaf)
				}
				continue
			}
			if n.Feature < 0 || n.Feature >= len(f.featureNames) {
				return fmt.Errorf("tree %d node %d: feature index %d out of range", ti, ni, n.Feature)
			}
			if n.Left <= ni || n.Left >= len(tr.Nodes) || n.Right <= ni || n.Right >= len(tr.Nodes) {
				return fmt.Errorf("tree %d node %d: child index out of range", ti, ni)
			}
		}
	}
	return nil
}

// FeatureNames returns the trained feature order.
func (f *Forest) FeatureNames() []string {
	return f.featureNames
}

// Classify runs every tree on the feature vector and returns the majority
// class. The vector width is checked against the trained schema first; a
// mismatch is ErrFeatureMismatch, never a silent misprediction.
func (f *Forest) Classify(features []float64) (Category, error) {
	if err := checkWidth(f.featureNames, features); err != nil {
		return "", err
	}

	votes := make(map[Category]int, len(f.classes))
	for _, tr := range f.trees {
		votes[tr.eval(features)]++
	}

	best := f.classes[0]
	for _, c := range f.classes[1:] {
		if votes[c] > votes[best] {
			best = c
		}
	}
	return best, nil
}

func (t tree) eval(features []float64) Category {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Leaf != "" {
			return Category(n.Leaf)
		}
		if features[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
