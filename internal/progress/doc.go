// Package progress turns per-candidate completion ticks into a throttled
// progress display.
//
// A Reporter owns a bounded tick channel. Senders never block: a tick that
// does not fit in the channel is counted in an overflow counter and folded
// back in on the next flush, so bursts are coalesced rather than lost. The
// display is refreshed at most once per interval, and Close flushes the final
// count and marks the bar complete.
package progress
