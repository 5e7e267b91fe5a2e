package quadrature

// Tabulated Genz-Keister rules for the exp(-x*x) weight, keyed by order.
// Weights are stored as published, so most sum to sqrt(pi) and the deepest
// gk18, gk22 and gk24 levels sum to 1; OneDim renormalizes either way.

// sharedTables holds the orders common to every family.
var sharedTables = map[int]table{
	1: {
		abscissas: []float64{
			0.0000000000000000E+00,
		},
		weights: []float64{
			1.7724538509055159E+00,
		},
	},
	3: {
		abscissas: []float64{
			-1.2247448713915889E+00, 0.0000000000000000E+00, 1.2247448713915889E+00,
		},
		weights: []float64{
			2.9540897515091930E-01, 1.1816359006036772E+00, 2.9540897515091930E-01,
		},
	},
	9: {
		abscissas: []float64{
			-2.9592107790638380E+00, -2.0232301911005157E+00, -1.2247448713915889E+00,
			-5.2403354748695763E-01, 0.0000000000000000E+00, 5.2403354748695763E-01,
			1.2247448713915889E+00, 2.0232301911005157E+00, 2.9592107790638380E+00,
		},
		weights: []float64{
			1.6708826306882348E-04, 1.4173117873979098E-02, 1.6811892894767771E-01,
			4.7869428549114124E-01, 4.5014700975378197E-01, 4.7869428549114124E-01,
			1.6811892894767771E-01, 1.4173117873979098E-02, 1.6708826306882348E-04,
		},
	},
	19: {
		abscissas: []float64{
			-4.4995993983103881E+00, -3.6677742159463378E+00, -2.9592107790638380E+00,
			-2.2665132620567876E+00, -2.0232301911005157E+00, -1.8357079751751868E+00,
			-1.2247448713915889E+00, -8.7004089535290285E-01, -5.2403354748695763E-01,
			0.0000000000000000E+00, 5.2403354748695763E-01, 8.7004089535290285E-01,
			1.2247448713915889E+00, 1.8357079751751868E+00, 2.0232301911005157E+00,
			2.2665132620567876E+00, 2.9592107790638380E+00, 3.6677742159463378E+00,
			4.4995993983103881E+00,
		},
		weights: []float64{
			1.5295717705322357E-09, 1.0802767206624762E-06, 1.0656589772852267E-04,
			5.1133174390883855E-03, -1.1232438489069229E-02, 3.2055243099445879E-02,
			1.1360729895748269E-01, 1.0838861955003017E-01, 3.6924643368920851E-01,
			5.3788160700510168E-01, 3.6924643368920851E-01, 1.0838861955003017E-01,
			1.1360729895748269E-01, 3.2055243099445879E-02, -1.1232438489069229E-02,
			5.1133174390883855E-03, 1.0656589772852267E-04, 1.0802767206624762E-06,
			1.5295717705322357E-09,
		},
	},
}

var gk16Tables = map[int]table{
	7: {
		abscissas: []float64{
			-2.9592107790638380E+00, -1.2247448713915889E+00, -5.2403354748695763E-01,
			0.0000000000000000E+00, 5.2403354748695763E-01, 1.2247448713915889E+00,
			2.9592107790638380E+00,
		},
		weights: []float64{
			1.2330680655153448E-03, 2.4557928535031393E-01, 2.3286251787386100E-01,
			8.1310410832613500E-01, 2.3286251787386100E-01, 2.4557928535031393E-01,
			1.2330680655153448E-03,
		},
	},
	17: {
		abscissas: []float64{
			-4.4995993983103881E+00, -3.6677742159463378E+00, -2.9592107790638380E+00,
			-2.0232301911005157E+00, -1.8357079751751868E+00, -1.2247448713915889E+00,
			-8.7004089535290285E-01, -5.2403354748695763E-01, 0.0000000000000000E+00,
			5.2403354748695763E-01, 8.7004089535290285E-01, 1.2247448713915889E+00,
			1.8357079751751868E+00, 2.0232301911005157E+00, 2.9592107790638380E+00,
			3.6677742159463378E+00, 4.4995993983103881E+00,
		},
		weights: []float64{
			3.7463469943051758E-08, -1.4542843387069391E-06, 1.8723818949278350E-04,
			1.2466519132805918E-02, 3.4840719346803800E-03, 1.5718298376652240E-01,
			2.5155825701712934E-02, 4.5119803602358544E-01, 4.7310733504965385E-01,
			4.5119803602358544E-01, 2.5155825701712934E-02, 1.5718298376652240E-01,
			3.4840719346803800E-03, 1.2466519132805918E-02, 1.8723818949278350E-04,
			-1.4542843387069391E-06, 3.7463469943051758E-08,
		},
	},
	31: {
		abscissas: []float64{
			-6.3759392709822356E+00, -5.6432578578857449E+00, -5.0360899444730940E+00,
			-4.4995993983103881E+00, -3.6677742159463378E+00, -2.9592107790638380E+00,
			-2.5705583765842968E+00, -2.2665132620567876E+00, -2.0232301911005157E+00,
			-1.8357079751751868E+00, -1.5794121348467671E+00, -1.2247448713915889E+00,
			-8.7004089535290285E-01, -5.2403354748695763E-01, -1.7606414208200893E-01,
			0.0000000000000000E+00, 1.7606414208200893E-01, 5.2403354748695763E-01,
			8.7004089535290285E-01, 1.2247448713915889E+00, 1.5794121348467671E+00,
			1.8357079751751868E+00, 2.0232301911005157E+00, 2.2665132620567876E+00,
			2.5705583765842968E+00, 2.9592107790638380E+00, 3.6677742159463378E+00,
			4.4995993983103881E+00, 5.0360899444730940E+00, 5.6432578578857449E+00,
			6.3759392709822356E+00,
		},
		weights: []float64{
			2.2365645607044459E-15, -2.6304696458548942E-13, 9.0675288231679823E-12,
			1.4055252024722478E-09, 1.0889219692128120E-06, 1.0541662394746661E-04,
			2.6665159778939428E-05, 4.8385208205502612E-03, -9.8566270434610019E-03,
			2.9409427580350787E-02, 3.1210210352682834E-03, 1.0939325071860877E-01,
			1.1594930984853116E-01, 3.5393889029580544E-01, 4.9855761893293160E-02,
			4.5888839636756751E-01, 4.9855761893293160E-02, 3.5393889029580544E-01,
			1.1594930984853116E-01, 1.0939325071860877E-01, 3.1210210352682834E-03,
			2.9409427580350787E-02, -9.8566270434610019E-03, 4.8385208205502612E-03,
			2.6665159778939428E-05, 1.0541662394746661E-04, 1.0889219692128120E-06,
			1.4055252024722478E-09, 9.0675288231679823E-12, -2.6304696458548942E-13,
			2.2365645607044459E-15,
		},
	},
	33: {
		abscissas: []float64{
			-6.3759392709822356E+00, -5.6432578578857449E+00, -5.0360899444730940E+00,
			-4.4995993983103881E+00, -4.0292201405043713E+00, -3.6677742159463378E+00,
			-2.9592107790638380E+00, -2.5705583765842968E+00, -2.2665132620567876E+00,
			-2.0232301911005157E+00, -1.8357079751751868E+00, -1.5794121348467671E+00,
			-1.2247448713915889E+00, -8.7004089535290285E-01, -5.2403354748695763E-01,
			-1.7606414208200893E-01, 0.0000000000000000E+00, 1.7606414208200893E-01,
			5.2403354748695763E-01, 8.7004089535290285E-01, 1.2247448713915889E+00,
			1.5794121348467671E+00, 1.8357079751751868E+00, 2.0232301911005157E+00,
			2.2665132620567876E+00, 2.5705583765842968E+00, 2.9592107790638380E+00,
			3.6677742159463378E+00, 4.0292201405043713E+00, 4.4995993983103881E+00,
			5.0360899444730940E+00, 5.6432578578857449E+00, 6.3759392709822356E+00,
		},
		weights: []float64{
			-1.7602932805372496E-15, 4.7219278666417693E-13, -3.4281570530349562E-11,
			2.7547825138935901E-09, -2.3903343382803510E-08, 1.2245220967158438E-06,
			9.8710009197409173E-05, 1.4753204901862772E-04, 3.7580026604304793E-03,
			-4.9118576123877555E-03, 2.0435058359107205E-02, 1.3032872699027960E-02,
			9.6913444944583621E-02, 1.3726521191567551E-01, 3.1208656194697448E-01,
			1.8411696047725790E-01, 2.4656644932829619E-01, 1.8411696047725790E-01,
			3.1208656194697448E-01, 1.3726521191567551E-01, 9.6913444944583621E-02,
			1.3032872699027960E-02, 2.0435058359107205E-02, -4.9118576123877555E-03,
			3.7580026604304793E-03, 1.4753204901862772E-04, 9.8710009197409173E-05,
			1.2245220967158438E-06, -2.3903343382803510E-08, 2.7547825138935901E-09,
			-3.4281570530349562E-11, 4.7219278666417693E-13, -1.7602932805372496E-15,
		},
	},
	35: {
		abscissas: []float64{
			-6.3759392709822356E+00, -5.6432578578857449E+00, -5.0360899444730940E+00,
			-4.4995993983103881E+00, -4.0292201405043713E+00, -3.6677742159463378E+00,
			-3.3491639537131945E+00, -2.9592107790638380E+00, -2.5705583765842968E+00,
			-2.2665132620567876E+00, -2.0232301911005157E+00, -1.8357079751751868E+00,
			-1.5794121348467671E+00, -1.2247448713915889E+00, -8.7004089535290285E-01,
			-5.2403354748695763E-01, -1.7606414208200893E-01, 0.0000000000000000E+00,
			1.7606414208200893E-01, 5.2403354748695763E-01, 8.7004089535290285E-01,
			1.2247448713915889E+00, 1.5794121348467671E+00, 1.8357079751751868E+00,
			2.0232301911005157E+00, 2.2665132620567876E+00, 2.5705583765842968E+00,
			2.9592107790638380E+00, 3.3491639537131945E+00, 3.6677742159463378E+00,
			4.0292201405043713E+00, 4.4995993983103881E+00, 5.0360899444730940E+00,
			5.6432578578857449E+00, 6.3759392709822356E+00,
		},
		weights: []float64{
			1.8684014894510604E-18, 9.6599466278563243E-15, 5.4896836948499462E-12,
			8.1553721816916897E-10, 3.7920222392319532E-08, 4.3737818040926989E-07,
			4.8462799737020461E-06, 6.3328620805617891E-05, 4.8785399304443770E-04,
			1.4515580425155904E-03, 4.0967527720344047E-03, 5.5928828911469180E-03,
			2.7780508908535097E-02, 8.0245518147390893E-02, 1.6371221555735804E-01,
			2.6244871488784277E-01, 3.3988595585585218E-01, 9.1262675363737921E-04,
			3.3988595585585218E-01, 2.6244871488784277E-01, 1.6371221555735804E-01,
			8.0245518147390893E-02, 2.7780508908535097E-02, 5.5928828911469180E-03,
			4.0967527720344047E-03, 1.4515580425155904E-03, 4.8785399304443770E-04,
			6.3328620805617891E-05, 4.8462799737020461E-06, 4.3737818040926989E-07,
			3.7920222392319532E-08, 8.1553721816916897E-10, 5.4896836948499462E-12,
			9.6599466278563243E-15, 1.8684014894510604E-18,
		},
	},
}

var gk18Tables = map[int]table{
	37: {
		abscissas: []float64{
			-6.853200069757519, -6.124527854622158, -5.521865209868350,
			-4.986551454150765, -4.499599398310388, -4.057956316089741,
			-3.667774215946338, -3.315584617593290, -2.959210779063838,
			-2.597288631188366, -2.266513262056788, -2.023230191100516,
			-1.835707975175187, -1.561553427651873, -1.224744871391589,
			-0.870040895352903, -0.524033547486958, -0.214618180588171,
			0.000000000000000, 0.214618180588171, 0.524033547486958,
			0.870040895352903, 1.224744871391589, 1.561553427651873,
			1.835707975175187, 2.023230191100516, 2.266513262056788,
			2.597288631188366, 2.959210779063838, 3.315584617593290,
			3.667774215946338, 4.057956316089741, 4.499599398310388,
			4.986551454150765, 5.521865209868350, 6.124527854622158,
			6.853200069757519,
		},
		weights: []float64{
			0.19030350940130498E-20, 0.187781893143728947E-16, 0.182242751549129356E-13,
			0.45661763676186859E-11, 0.422525843963111041E-09, 0.16595448809389819E-07,
			0.295907520230744049E-06, 0.330975870979203419E-05, 0.32265185983739747E-04,
			0.234940366465975222E-03, 0.985827582996483824E-03, 0.176802225818295443E-02,
			0.43334988122723492E-02, 0.15513109874859354E-01, 0.442116442189845444E-01,
			0.937208280655245902E-01, 0.143099302896833389E+00, 0.147655710402686249E+00,
			0.968824552928425499E-01, 0.147655710402686249E+00, 0.143099302896833389E+00,
			0.937208280655245902E-01, 0.442116442189845444E-01, 0.15513109874859354E-01,
			0.43334988122723492E-02, 0.176802225818295443E-02, 0.985827582996483824E-03,
			0.234940366465975222E-03, 0.32265185983739747E-04, 0.330975870979203419E-05,
			0.295907520230744049E-06, 0.16595448809389819E-07, 0.422525843963111041E-09,
			0.45661763676186859E-11, 0.182242751549129356E-13, 0.187781893143728947E-16,
			0.19030350940130498E-20,
		},
	},
}

var gk22Tables = map[int]table{
	41: {
		abscissas: []float64{
			-7.251792998192644, -6.547083258397540, -5.961461043404500,
			-5.437443360177798, -4.953574342912980, -4.4995993983103881,
			-4.070919267883068, -3.6677742159463378, -3.296114596212218,
			-2.9592107790638380, -2.630415236459871, -2.2665132620567876,
			-2.043834754429505, -2.0232301911005157, -1.8357079751751868,
			-1.585873011819188, -1.2247448713915889, -0.87004089535290285,
			-0.52403354748695763, -0.195324784415805, 0.0000000000000000,
			0.195324784415805, 0.52403354748695763, 0.87004089535290285,
			1.2247448713915889, 1.585873011819188, 1.8357079751751868,
			2.0232301911005157, 2.043834754429505, 2.2665132620567876,
			2.630415236459871, 2.9592107790638380, 3.296114596212218,
			3.6677742159463378, 4.070919267883068, 4.4995993983103881,
			4.953574342912980, 5.437443360177798, 5.961461043404500,
			6.547083258397540, 7.251792998192644,
		},
		weights: []float64{
			0.664195893812757801E-23, 0.860427172512207236E-19, 0.1140700785308509E-15,
			0.408820161202505983E-13, 0.581803393170320419E-11, 0.400784141604834759E-09,
			0.149158210417831408E-07, 0.315372265852264871E-06, 0.381182791749177506E-05,
			0.288976780274478689E-04, 0.189010909805097887E-03, 0.140697424065246825E-02,
			-0.144528422206988237E-01, 0.178852543033699732E-01, 0.705471110122962612E-03,
			0.165445526705860772E-01, 0.45109010335859128E-01, 0.928338228510111845E-01,
			0.145966293895926429E+00, 0.165639740400529554E+00, 0.562793426043218877E-01,
			0.165639740400529554E+00, 0.145966293895926429E+00, 0.928338228510111845E-01,
			0.45109010335859128E-01, 0.165445526705860772E-01, 0.705471110122962612E-03,
			0.178852543033699732E-01, -0.144528422206988237E-01, 0.140697424065246825E-02,
			0.189010909805097887E-03, 0.288976780274478689E-04, 0.381182791749177506E-05,
			0.315372265852264871E-06, 0.149158210417831408E-07, 0.400784141604834759E-09,
			0.581803393170320419E-11, 0.408820161202505983E-13, 0.1140700785308509E-15,
			0.860427172512207236E-19, 0.664195893812757801E-23,
		},
	},
}

var gk24Tables = map[int]table{
	43: {
		abscissas: []float64{
			-10.167574994881873, -7.231746029072501, -6.535398426382995,
			-5.954781975039809, -5.434053000365068, -4.952329763008589,
			-4.4995993983103881, -4.071335874253583, -3.6677742159463378,
			-3.295265921534226, -2.9592107790638380, -2.633356763661946,
			-2.2665132620567876, -2.089340389294661, -2.0232301911005157,
			-1.8357079751751868, -1.583643465293944, -1.2247448713915889,
			-0.87004089535290285, -0.52403354748695763, -0.196029453662011,
			0.0000000000000000, 0.196029453662011, 0.52403354748695763,
			0.87004089535290285, 1.2247448713915889, 1.583643465293944,
			1.8357079751751868, 2.0232301911005157, 2.089340389294661,
			2.2665132620567876, 2.633356763661946, 2.9592107790638380,
			3.295265921534226, 3.6677742159463378, 4.071335874253583,
			4.4995993983103881, 4.952329763008589, 5.434053000365068,
			5.954781975039809, 6.535398426382995, 7.231746029072501,
			10.167574994881873,
		},
		weights: []float64{
			0.546191947478318097E-37, 0.87544909871323873E-23, 0.992619971560149097E-19,
			0.122619614947864357E-15, 0.421921851448196032E-13, 0.586915885251734856E-11,
			0.400030575425776948E-09, 0.148653643571796457E-07, 0.316018363221289247E-06,
			0.383880761947398577E-05, 0.286802318064777813E-04, 0.184789465688357423E-03,
			0.150909333211638847E-02, -0.38799558623877157E-02, 0.67354758901013295E-02,
			0.139966252291568061E-02, 0.163616873493832402E-01, 0.450612329041864976E-01,
			0.928711584442575456E-01, 0.145863292632147353E+00, 0.164880913687436689E+00,
			0.579595986101181095E-01, 0.164880913687436689E+00, 0.145863292632147353E+00,
			0.928711584442575456E-01, 0.450612329041864976E-01, 0.163616873493832402E-01,
			0.139966252291568061E-02, 0.67354758901013295E-02, -0.38799558623877157E-02,
			0.150909333211638847E-02, 0.184789465688357423E-03, 0.286802318064777813E-04,
			0.383880761947398577E-05, 0.316018363221289247E-06, 0.148653643571796457E-07,
			0.400030575425776948E-09, 0.586915885251734856E-11, 0.421921851448196032E-13,
			0.122619614947864357E-15, 0.992619971560149097E-19, 0.87544909871323873E-23,
			0.546191947478318097E-37,
		},
	},
}
