package main

type uiState struct {
	mode       mode
	drawerOpen bool

	noticeMsg  string
	noticeType string
	noticeSeq  int

	// frameSeq invalidates animation tickers from earlier runs.
	frameSeq     int
	frameRunning bool

	hoverKey int

	// Screen geometry, recomputed on resize.
	canvasX, canvasY       int
	canvasCols, canvasRows int
	controlsX, controlsY   int
	drawerHeight           int
}
