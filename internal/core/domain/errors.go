package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyNodeID is returned when a node without an ID is added to a graph.
	ErrEmptyNodeID = zerr.New("node id is empty")

	// ErrNodeAlreadyExists is returned when a node ID is added twice.
	ErrNodeAlreadyExists = zerr.New("node already exists")

	// ErrEdgeAlreadyExists is returned when the same source, target and direction are added twice.
	ErrEdgeAlreadyExists = zerr.New("edge already exists")

	// ErrMissingEndpoint is returned when an edge references a node that is not in the graph.
	ErrMissingEndpoint = zerr.New("edge endpoint not found")

	// ErrInvalidColor is returned when a colour string cannot be parsed.
	ErrInvalidColor = zerr.New("invalid color")

	// ErrNoDrawingContext is returned when the presentation surface has no 2D context.
	ErrNoDrawingContext = zerr.New("could not get 2d drawing context")

	// ErrAssetLoadFailed is returned when an icon image cannot be loaded.
	ErrAssetLoadFailed = zerr.New("failed to load asset")

	// ErrInvalidSettings is returned when a settings file fails validation.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrInvalidGraphFile is returned when a graph file cannot be turned into a graph.
	ErrInvalidGraphFile = zerr.New("invalid graph file")

	// ErrNoGraphSource is returned when neither a graph file nor demo data is requested.
	ErrNoGraphSource = zerr.New("no graph source: pass a graph file or enable demo data")

	// ErrMissingAssets is returned by validation when icon files are absent.
	ErrMissingAssets = zerr.New("missing icon assets")
)
