/*
go-regioncount counts tracked objects that enter operator defined
polygonal regions of a video frame.  It was built for counting
suitcases on airport baggage paths but works with any detection and
tracking pipeline that produces per frame bounding boxes with
persistent track IDs.

Detection and tracking are external collaborators.  This module
consumes their per frame observations and maintains per region unique
entry counts, current occupancy, crossing events, and dwell time
statistics, along with gocv based overlay rendering of the regions,
boxes, trails, and totals.

See example code and usage in the example subdirectory.
*/
package regioncount
