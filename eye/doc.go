// Package eye renders an animated cartoon eye into a packed RGB565 buffer.
//
// An Engine owns a fixed-size render buffer and a scaled output buffer. Each
// accepted Update advances a shared Gaze controller and one Blink controller per
// eye, redraws the current eye scanline by scanline from immutable Textures, and
// resamples the result into the output buffer. Nothing in the per-frame path
// allocates.
//
// Pipeline (fixed):
//
//	Clock/Rand → Gaze + Blink → Renderer (RenderBuffer) → Resampler (ScaledBuffer).
//
// The engine is single-threaded: Update and the setters must be called from one
// goroutine (the scheduler). Update rate-limits itself to Config.FrameInterval and
// returns false without touching any buffer when called too early.
//
// Output access:
//
// ScaledBuffer returns the live output slice without synchronization; a reader on
// another goroutine may observe a frame mid-write. ReadScaled holds the output lock
// while its callback runs and is the safe way to hand frames to a display driver.
// With Config.DoubleBuffer the resampler writes a back buffer and only the swap
// takes the lock.
package eye
