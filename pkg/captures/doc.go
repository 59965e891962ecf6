// Package captures persists raw wire payloads collected from real
// devices and replays them through the record codecs. It exists to
// settle the layout totals the legacy notes left unverified: add
// captures as they are collected, then run Verify to see whether the
// declared sizes hold up.
package captures
