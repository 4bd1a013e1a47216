// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package math

// 2^f on [0, 1), lowest degree first.
var (
	exp2Poly_f32 = []float32{
		1.0,
		0.6931469440460205,
		0.24023045599460602,
		0.055480629205703735,
		0.009684186428785324,
		0.0012391331838443875,
		0.00021865784947294742,
	}
	exp2Poly_f64 = []float64{
		1.0,
		0.6931471805599465,
		0.24022650695904277,
		0.0555041086659012,
		0.00961812909724503,
		0.0013333558734919516,
		0.0001540350928370369,
		1.5253231141364262e-05,
		1.320769749209033e-06,
		1.0258188854184174e-07,
		6.538608553499254e-09,
		6.301478117433779e-10,
	}
)

// (e^x - 1 - x) / x^2 on |x| < ln2/2.
var (
	expm1Poly_f32 = []float32{
		0.5,
		0.16666577756404877,
		0.041666556149721146,
		0.008363173343241215,
		0.0013926175888627768,
	}
	expm1Poly_f64 = []float64{
		0.5000000000000001,
		0.16666666666666669,
		0.041666666666624164,
		0.008333333333330065,
		0.0013888888917196719,
		0.00019841269863040545,
		2.4801521322368692e-05,
		2.7557268480310024e-06,
		2.7620075879983367e-07,
		2.5100375832561234e-08,
	}
)

// log2((1+s)/(1-s)) / s as a polynomial in s^2, s = (m-1)/(m+1), m in [sqrt(1/2), sqrt(2)).
var (
	log2Poly_f32 = []float32{
		2.885390043258667,
		0.9617988467216492,
		0.5767151713371277,
		0.4317176938056946,
	}
	log2Poly_f64 = []float64{
		2.8853900817779268,
		0.9617966939259898,
		0.5770780163455203,
		0.4121985858409005,
		0.32059853491395984,
		0.262334352504183,
		0.2209130842311768,
		0.2136589569431927,
	}
)

// Starting guess for m^(1/3) on [0.5, 1), refined by Newton steps.
var (
	cbrtPoly_f32 = []float32{
		0.441131591796875,
		0.9220044016838074,
		-0.5037218928337097,
		0.14063547551631927,
	}
	cbrtPoly_f64 = []float64{
		0.44113157750282334,
		0.9220044243035053,
		-0.5037219119925953,
		0.14063547369158258,
	}
)

// (sin(y) - y) / y^3 as a polynomial in y^2 on [-pi/4, pi/4].
var (
	sinPoly_f32 = []float32{
		-0.1666666716337204,
		0.008333331905305386,
		-0.00019840087043121457,
		2.7249925551586784e-06,
	}
	sinPoly_f64 = []float64{
		-0.16666666666666666,
		0.008333333333333331,
		-0.00019841269841265065,
		2.7557319219339167e-06,
		-2.5052106232447578e-08,
		1.6058531618986147e-10,
		-7.586697117706918e-13,
	}
)

// (cos(y) - 1) / y^2 as a polynomial in y^2 on [-pi/4, pi/4].
var (
	cosPoly_f32 = []float32{
		-0.5,
		0.0416666679084301,
		-0.0013888884568586946,
		2.479986142134294e-05,
		-2.72371408982508e-07,
	}
	cosPoly_f64 = []float64{
		-0.5,
		0.041666666666666664,
		-0.0013888888888888883,
		2.4801587301578204e-05,
		-2.755731921819105e-07,
		2.0876754983065435e-09,
		-1.1470361263661415e-11,
		4.74108669850752e-14,
	}
)

// atan(z) / z as a rational function of z^2 on [0, 1]. The numerator degree is atanNum.
var (
	atanRational_f32 = []float32{
		1.0,
		1.116260290145874,
		0.277986615896225,
		0.008414573967456818,
		1.4495933055877686,
		0.5611892938613892,
		0.04838100075721741,
	}
	atanRational_f64 = []float64{
		1.0,
		2.481724209061851,
		2.2349154765019423,
		0.888660069119356,
		0.15085854900786466,
		0.008671322302831238,
		7.270489172902097e-05,
		2.8150575423951674,
		2.9732679906346715,
		1.4595950336848558,
		0.33377659546456573,
		0.030888667775341612,
		0.000755333999987682,
	}
)

// erf(x) / x as a polynomial in x^2 on [-1, 1].
var (
	erfPoly_f32 = []float32{
		1.1283791065216064,
		-0.37612342834472656,
		0.11280316859483719,
		-0.026715055108070374,
		0.004921761807054281,
		-0.0005648059886880219,
	}
	erfPoly_f64 = []float64{
		1.1283791670955126,
		-0.37612638903183543,
		0.11283791670945006,
		-0.02686617064323777,
		0.0052239776071164225,
		-0.0008548325975389692,
		0.00012055294904839707,
		-1.492473690741966e-05,
		1.6447424703317362e-06,
		-1.6208483801871705e-07,
		1.3720064546777686e-08,
		-7.795898827002142e-10,
	}
)

// x * exp(x^2) * erfc(x) as a rational function of t = 1/x on [1, cutoff]. The numerator degree is erfcNum.
var (
	erfcRational_f32 = []float32{
		0.5641611814498901,
		2.4281787872314453,
		4.876090049743652,
		4.422956466674805,
		4.30234956741333,
		9.161287307739258,
		9.857999801635742,
		4.424524307250977,
	}
	erfcRational_f64 = []float64{
		0.5641895835483314,
		12.266308805845412,
		131.6934590857172,
		905.6689675938389,
		4382.094375969396,
		15518.213470909937,
		40667.04662942167,
		77961.18510910882,
		105101.41234498346,
		90825.23314830945,
		38956.23490483127,
		21.741466279457367,
		233.92057868669517,
		1616.12718273904,
		7883.270331910572,
		28297.07489903762,
		75848.53033747034,
		151159.84452487412,
		218730.90766014112,
		218231.09716380885,
		134782.63704375003,
		38956.234904805955,
	}
)

// Cody-Waite splits: the high part carries few enough bits that n*hi is
// exact for every reduction multiple n that can occur.
var (
	ln2Hi_f32      float32 = 0.693359375
	ln2Lo_f32      float32 = -0.00021219444170128554
	log10of2Hi_f32 float32 = 0.30078125
	log10of2Lo_f32 float32 = 0.00024874566588550806
	pio2Hi_f32     float32 = 1.5707963705062866
	pio2Lo_f32     float32 = -4.371138828673793e-08
	piHi_f32       float32 = 3.1415927410125732

	ln2Hi_f64      float64 = 0.6931471803691238
	ln2Lo_f64      float64 = 1.9082149292723212e-10
	log10of2Hi_f64 float64 = 0.3010299955494702
	log10of2Lo_f64 float64 = 1.1451100898021838e-10
	pio2Hi_f64     float64 = 1.5707963267948966
	pio2Lo_f64     float64 = 6.123233995736766e-17
	piHi_f64       float64 = 3.141592653589793
)

// pi/2 in three parts for the sin/cos reduction.
var (
	pio2A_f32 float32 = 1.5707963705062866
	pio2B_f32 float32 = -4.371138828673793e-08
	pio2C_f32 float32 = -1.7151245100058819e-15

	pio2A_f64 float64 = 1.5707963267948966
	pio2B_f64 float64 = 6.123233995736766e-17
	pio2C_f64 float64 = -1.4973849048591698e-33
)

var (
	ln2_f32      float32 = 0.6931471824645996
	log2E_f32    float32 = 1.4426950216293335
	log2of10_f32 float32 = 3.321928024291992
	log10of2_f32 float32 = 0.3010300099849701
	cbrt2_f32    float32 = 1.2599210739135742
	cbrt4_f32    float32 = 1.587401032447815
	invPio2_f32  float32 = 0.6366197466850281

	ln2_f64      float64 = 0.6931471805599453
	log2E_f64    float64 = 1.4426950408889634
	log2of10_f64 float64 = 3.321928094887362
	log10of2_f64 float64 = 0.3010299956639812
	cbrt2_f64    float64 = 1.2599210498948732
	cbrt4_f64    float64 = 1.5874010519681996
	invPio2_f64  float64 = 0.6366197723675814
)

// Numerator degrees of the rational tables.
const (
	atanNum_f32 = 3
	atanNum_f64 = 6
	erfcNum_f32 = 3
	erfcNum_f64 = 10
)

// Domain bounds.
var (
	// erfc(x) reaches the smallest normal value near these arguments.
	// Lanes at or past them are flushed to zero so the tail never produces
	// subnormals.
	erfcCutoff_f32 float32 = 9.19
	erfcCutoff_f64 float64 = 26.54

	// Beyond these |x| tanh(x) rounds to ±1 and sinh/cosh switch to the
	// overflow-safe exp(|x|/2)^2 form.
	hyperBound_f32 float32 = 9
	hyperBound_f64 float64 = 20

	// Beyond these |x| asinh and acosh use log(|x|) + ln2.
	hyperLarge_f32 float32 = 0x1p12
	hyperLarge_f64 float64 = 0x1p28
)
