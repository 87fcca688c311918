// Package corpus prepares training data for a text-correction model.
//
// Book-length text is split into sentences, grouped into word-budgeted
// chunks and normalized. Clean chunks can then be paired with noisy copies
// produced by a mistake.Mistaker.
//
// # Quick Start
//
//	p, err := corpus.New(corpus.WithMaxChunkSize(200))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	chunks, err := p.Prepare(ctx, text)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	typo, _ := mistake.NewTypographical(mistake.WithProbability(0.1))
//	pairs := corpus.MakePairs(mistake.NewRand(42), typo, chunks)
//
// # Sentence Splitting
//
// The default splitter is segment.Rules. For better boundaries on messy
// text, load a SaT model and pass it with WithSplitter:
//
//	sat, err := segment.NewSaT("model.onnx", "sentencepiece.bpe.model")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sat.Close()
//
//	p, err := corpus.New(corpus.WithSplitter(sat))
//
// # Thread Safety
//
// Preparer is safe for concurrent use. Randomness is never shared
// implicitly: each caller passes its own mistake.Rand, and ProcessBooks
// derives a seed per book with BookSeed so output does not depend on
// scheduling.
package corpus
