// Package ingest moves raw producer messages into the tick processor.
//
// It has two pieces: a small fixed worker pool ([DecoderPool]) that turns
// raw text into typed envelopes off the render tick thread, and a bounded
// multi-producer/single-consumer queue ([Queue]) with drop-oldest
// backpressure between the decoders and the tick loop.
//
// The queue is the only cross-thread synchronization point in the pipeline;
// everything downstream of DrainAll runs on the single consumer goroutine.
package ingest
