package geo

// CaliforniaOutline is a simplified state boundary, [lng, lat] pairs
// closing back on the first vertex.
var CaliforniaOutline = [][2]float64{
	{-124.409591, 42.009518},
	{-124.137573, 41.997065},
	{-124.211606, 41.147792},
	{-124.158132, 40.265358},
	{-124.065521, 39.692747},
	{-123.830961, 39.366758},
	{-123.765007, 38.953660},
	{-123.519868, 38.510883},
	{-123.055039, 37.971988},
	{-122.760529, 37.585571},
	{-122.415847, 37.241128},
	{-122.074287, 36.956083},
	{-121.879577, 36.631954},
	{-121.810726, 36.308446},
	{-121.586029, 36.237373},
	{-121.286542, 36.190338},
	{-120.869947, 35.977520},
	{-120.671997, 35.707225},
	{-120.623782, 35.223904},
	{-120.879947, 34.921875},
	{-121.026894, 34.643444},
	{-120.494766, 34.473673},
	{-120.003266, 34.461222},
	{-119.514481, 34.378571},
	{-119.138447, 34.104817},
	{-118.521499, 33.841377},
	{-118.132080, 33.752529},
	{-117.465576, 33.297520},
	{-117.134972, 32.876160},
	{-117.246704, 32.668203},
	{-117.009583, 32.534156},
	{-117.124862, 32.535330},
	{-117.241219, 32.665950},
	{-117.244492, 32.963265},
	{-116.074135, 32.624876},
	{-114.719550, 32.718763},
	{-114.524536, 32.755634},
	{-114.468750, 32.974014},
	{-114.522461, 33.032510},
	{-114.596863, 33.259277},
	{-114.635010, 33.426773},
	{-114.721069, 33.405933},
	{-114.677734, 33.549873},
	{-114.512451, 33.656723},
	{-114.495850, 33.770271},
	{-114.532349, 33.901329},
	{-114.492432, 34.113182},
	{-114.261230, 34.174118},
	{-114.139404, 34.303341},
	{-114.380371, 34.449570},
	{-114.632568, 34.877167},
	{-114.631348, 35.002083},
	{-114.595581, 35.123840},
	{-114.679565, 35.489841},
	{-114.655151, 35.869976},
	{-114.689453, 36.143310},
	{-114.371338, 36.140175},
	{-114.045410, 36.194122},
	{-114.044189, 37.592537},
	{-114.040283, 38.148781},
	{-114.043457, 38.676880},
	{-114.046875, 39.538750},
	{-114.050781, 40.116882},
	{-114.039551, 40.997952},
	{-114.039062, 41.995232},
	{-117.027588, 42.000183},
	{-119.312744, 41.989159},
	{-119.999084, 41.994476},
	{-122.378418, 42.009518},
	{-124.409591, 42.009518},
}
