package params

// DefaultSampling is the sampling used when a caller does not choose one,
// in meters per pixel.
const DefaultSampling = 500

// CommonSamplings lists the samplings in productive use. Any sampling that
// divides its tile class evenly works; these are the ones data products
// actually ship with.
var CommonSamplings = []int{10, 20, 25, 40, 75, 500}
