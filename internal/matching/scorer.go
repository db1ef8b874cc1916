// Package matching implements the lost/found matching engine: pairwise
// similarity scoring, the orchestration run triggered by each new report,
// and the match approve/reject lifecycle.
package matching

import (
	"github.com/siddarthan007/laf/internal/embedding"
	"github.com/siddarthan007/laf/internal/model"
)

// comparison is one modality pair to evaluate. A comparison is only
// computable when both of its vectors exist; missing vectors drop the
// comparison entirely instead of scoring as zero.
type comparison struct {
	source []float32
	target []float32
}

// Score returns the confidence score for a source/target item pair: the
// maximum cosine similarity over all computable modality comparisons
// (text↔text, text↔image, image↔text, image↔image). Taking the max rewards
// any strong cross-modal signal, which matters because the two reports are
// authored independently. The second return is false when no comparison is
// computable. Negative similarities are discarded so the score stays in [0, 1].
func Score(source, target *model.Item) (float64, bool) {
	comparisons := []comparison{
		{source.DescriptionVector, target.DescriptionVector},
		{source.DescriptionVector, target.ImageVector},
		{source.ImageVector, target.DescriptionVector},
		{source.ImageVector, target.ImageVector},
	}

	best := 0.0
	computed := false
	for _, c := range comparisons {
		if len(c.source) == 0 || len(c.target) == 0 {
			continue
		}
		sim, ok := embedding.Cosine(c.source, c.target)
		if !ok || sim < 0 {
			continue
		}
		if !computed || sim > best {
			best = sim
			computed = true
		}
	}

	return best, computed
}
