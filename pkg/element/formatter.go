package element

// Formatter is a label template string understood by the rendering engine,
// such as "{value} kg" or "{b}: {c} ({d}%)". It is passed through verbatim.
type Formatter string
