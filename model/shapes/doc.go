/*
Package shapes implements the sample generators behind every model.Shape.

A Generator owns a seeded random source and produces an endless stream of
samples, one per Next call. Classification shapes place points in the
[-1,1]x[-1,1] square and label them by a geometric rule (half planes,
quadrants, diagonals, circles, an ellipse) or draw five bernoulli bits.
Regression shapes evaluate a fixed polynomial of uniform features and add
gaussian noise.

The same seed and shape always give the same stream. A Generator is not
safe for concurrent use.
*/
package shapes
