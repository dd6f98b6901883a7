// Package recording captures drawing operations as commands.
//
// A Recorder implements curvekit.Surface. Instead of rasterizing it stores
// every call as a typed Command, which makes it useful in three places:
//
//   - tests assert on exactly what a primitive drew;
//   - the browser session ships frames to a page that replays them onto an
//     HTML canvas (commands encode to JSON with canvas-style op names);
//   - a frame can be replayed onto any other Surface, such as the gg
//     raster surface, with Recording.Playback.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	scene.Draw(rec)
//	frame := rec.FinishRecording()
//
//	// Replay onto a raster surface
//	frame.Playback(ggsurface.New(800, 600))
//
// Recorders are not safe for concurrent use.
package recording
