package tdx

// HexKeys 股本变迁文件的固定解密密钥表 (0x1048 字节):
// 前 0x48 字节为轮密钥，其后为 4 张 256 项的 S 盒
const HexKeys = `
3b5aad11 8023eb73 683aecc5 a91cbc98 979073d0 f02c4f20 7b745a0d 9f775997
24277666 d065b08f 760d21f9 0baee27b 8e4c0dfc 99b59438 84633c75 d3db52ee
74f21750 48095851 f2fd6b01 32e83ce2 ef2f2238 b3a0e7fa 5533d818 33cbb874
8b7b3f35 9efb8c24 1e70df72 cc77f99f 4e39aa45 ebbbcb9b ccb15e08 1e85024b
df0a744f f9a306a3 9bd442d1 ff398334 05aa3d20 e75f3d29 be2fd5c1 7a2a028b
0bc4abc0 43ce3998 b79f3943 1bc16bd0 c628e3bb 3eebb526 3410b176 112c5d3e
7132023a 0767edde 612d1f48 317be98b fce1ef62 5b8c949a dc039c64 5d53aaaf
20665d6e 14f14fba a3f8f73e 224245d5 e561d80f 50c5b054 c698f91f de47f625
6f8d62b9 e454e898 40bdf755 afc94eaf 7c21be7e 0b859210 7af1a597 e0e86d49
afe10ed6 7cd1118f 86eee4e3 e8fec941 72fce90b b485fcfa a02faf09 2ed8aae0
15b4e8c4 a070aa3b 47aeb809 df517231 22bed5fe 3302ee82 5a9425e0 66c6e5d0
84ef812d 5cb320ed 30296712 aa54f97a fdce8ca9 fa618a43 a1c43219 fd85223a
a1858d73 f44b31bd fd2f9dc4 440fab1c de178ad2 0c98459f f716872b 0084ca20
87cab2ae 6a15f8dd a8f0a935 e2ef68dd 05c443a1 a8d091e4 5c9ccd79 c9fb297c
3e1a30f8 60e3d972 c0bea135 099975f9 72c2be27 07fd6cc3 1a5a99ce 080d17ef
b314cd12 0de38688 a1a18821 3089fc3c f5eb7ea9 5d1066bb c4a07f32 f66e3a3b
b0edf9d9 ce2a50a6 f774f3e3 f837356d ec496271 7b3465f0 d1bb88b8 6525c7bf
64a589a1 ccee3095 00254218 0bd263d0 df145976 0a1b5486 dc1154a1 44e3cb48
44e9311f a550c4ee 2ff439bb 1e0ef470 bd86aa47 25031d6c 67d858e3 ed1bd76a
ac2ca927 69286287 f5d6c58d 67e1b989 d78d343b cd63eb7b f0aa471e c38841b3
1f105b36 849a313b 73f0370e f99137e3 5aec5b69 d26c4a1e 88d117ce fd7b2c95
26a9fe23 77e96210 431fe5eb 082a2554 5a979cce 21979e25 2f553333 cb712169
8066daef fc881e49 b4f4501c 0b9af74b 544f759d e3ab3d71 d3be1ed6 e57e02e4
b1522315 85826e77 f315b0d0 568916fd 35149fa1 97e0b56b 845e9f9d 8f487c91
17f7bfb9 708d3870 fb16c875 711d0270 0281b463 8d5bed37 aaf88dfc 244d83e3
a5a8d467 2588b47a 421e2cdd 5006e2cb 9ac4e9e2 588f54b7 d31e5e5a 0ba3be54
86948107 40b5b7ef d8739788 29cb1e99 2f8cb10d acd1602c 89216789 a029a421
c4e58e25 3d33a1af bfa9a2a0 86355201 4550a377 c93986e2 65ef3cef e34f81b9
a63092eb 766bc994 14cd0b66 238e2fda 5515807e 8198e1eb 50d5cfb0 4070d0bd
d45d4699 ea3562e3 514b5a71 1f159bdc 7ea980ab 5136bc98 ca5fd176 0f29c050
8a574192 a989d75a f8c55030 48f0516d 69b858b6 926cc816 59276f9d d005693b
d9b3bff8 7cb174f8 da555bcb 106b6e58 b3902400 33efd97d b5d38885 d94c928a
c4cbebaf f90ed8bf 669a1a42 131f8ec7 0c065092 9875fa1f f66ec3d1 22b5e24a
d841b6f2 85877df1 9574c7b8 a52087ca 6425b721 357577f5 748db7cc 1d2c72f2
df217fc5 fe4fd412 e42b53ff 31b3f0df 133c00c5 ca31f672 07e8976a 64c423c2
cc196edb ea2d563d 8aa1fe12 ea5c25a1 f13d5238 4dd73d3b ca1836f2 44c62c0c
b90310b2 516030e3 2a79f77f e25f8b0f bdc3505d 3ab30fad ae9e5b1e 9f8123b1
1d1a0fbd 7e300370 2692da8b 683c9ae2 f09bebe6 9b3c8640 997e11cc 29eee0cf
5be1d737 f3827cd0 28643f87 787d4ac2 a31bce3b 70c297b4 dd1ae157 67c23f88
3e38e8dc 73ca6e86 b260c608 f25221bd def1a2e5 39beedb6 dac09ce5 95dcecbf
18d7acd1 1a99c147 18374c43 0378ce89 49fb4e84 28809c5d 9d1a59c9 6b28d9bd
5c49d280 bca69d9e 1e37edd3 a1329529 c53d7735 5bccc4dc e85632c2 8a74433e
76bdc5bf 1b7202c6 c6c502ea 834da8a0 50f137be a4debb1f fe1e03b5 f7cfd11d
2b83f523 c7bfec31 e184fbb4 973d1f3b 5366cf47 bcffb2a9 b1c8b917 02e39fa3
1737e7ae 0dcecc04 a5d536e3 f114501b 0098fabb bc74a1cf f1da27f6 cd00a6bd
e1bf5836 4e81a6f6 ad6ad92e ad94828d 249cba56 754feac9 6519ae99 173de715
9593db65 04c0aa1e 60f80a07 26bc7737 8313237f 95105963 5077bc5d 5b65f684
67d81931 2a59164e 4d4b3df1 e72b942e 31c93d3a 7caf3d1e ae5c9687 3e2cd6c3
70991d52 ad707bd7 982e648d 94cf9ddb ef30ae1e d6d6b61d c6570ef5 d979400b
4a295097 d16d8a4f 0c38ddbf af4c8dac 703fe473 724fe6d1 d250662d d03451c0
dcd0816f 75fa069e ca762d9d 44a7fd18 a75e96b3 c872e39e 7ffed72f ecde58f7
c06949d8 a0e3458f 0063fa2f a44c42cb cd35586f 87d81336 f11777d2 9b2980c9
03ac0400 df0ce8e4 eb6c3ff6 75528e2d 83fcd7ef ce975938 2b58fd29 2e716e0d
f9e08e00 aa6d9142 2ded428a c25ca167 a733d474 1a47a087 61229cd1 d6c5b636
b3c0f86d b6d381bf 9a25cd83 cc25c660 0f6492e5 f2a9f990 0b659851 849307f6
c9f6f39e 6720f4ae 6a6abada 6c3f90ba 661b64ba 0bbc0e29 509fbd26 e61b6c96
72044c40 fea5a467 136e1d8b f19b5562 df5f5be4 7b041067 3170539f 2d7af660
cf1504c2 5f489102 1e78d510 5d612e3e 1bed9121 a96e4583 8260372a cecf2847
d9e627d5 1ff4f01d 5f600fb0 2ce84062 fed4dedd 8e9316a1 a3df3d75 dd04b93a
e6343495 947aadd2 e675b58b 0cdd39f9 8820e4d5 5c716a15 8e7e5cab c59abf8f
a165e7fe ec3c7ec3 12e2b7b3 bdcce4ca e598cd95 9d16dc22 cbc156a7 6e696a04
ee82ed30 864ae313 89be1e5f a94a59ad c8ad9d53 cccd90c3 4e16183d 906cbae5
90735fa6 1d761387 f0d961ca f16d2f87 68ec5814 cfec55c3 22878483 3d7db5ca
b6964329 7751a434 e14b7918 fc1e00b9 122e08dc 1503e6ad 65065801 6946ee8b
e69bf44b 2fa7f77c fffceb65 f8aa24d6 c0f84beb a0602b16 f98898d9 0d345235
563b9e55 f7327bf4 4aac24dc 8448bafd 47c1a96d 90aa3093 8260a496 d1788952
fe678aae 92946bdd 382d34ba 19012cbd 82a57bdc 51e89db5 cee6bfe7 54b731ff
03b0e3d5 a4f73c0a 010a4520 e9096d31 b0adda1e 4d3aaa42 0c429aa4 54868572
65ca79d9 e08f2606 819487c6 8a97a83b 6eb9e877 da414faf 2918423c e89d86c7
2566e8bf a690fe68 cc7d5493 6c007547 c91ea22e 0adc3bf6 a72c3ee8 46394802
1f865805 a603c711 6ac0df79 d7703f7e 1846e7e6 4c6a9a40 a551feb4 0cd22e32
997485ab cb2d6b5b 398dc5f3 f61e7e7c 18c6d071 d16bb339 cd678c0e 46f033b1
e5c0bbf7 27a7ae51 e4520a04 332a9e99 1077fbef 5f2eaea1 a72a0f16 91d10524
0ed3b494 f316f77f 6e5b6308 0fc82ca3 563d19d7 31304a46 bf5ec830 12050d0d
bcf743f6 f68337b2 ee41e6bb bc3f71ab 671b0218 b91bef44 ca972402 534eafe0
d90bbff4 5ddf562e 9b5eaef0 aa01816b d6f9ad06 b066ba94 495a0fb3 65e2d6ac
cc1ee033 4d576ccd f543342d ba230fbe 92470a8e 27d660f5 d218de53 8b6c7122
c5fe3f96 6505eba0 acc415c1 03790750 0eb55afc fe5a2f9d a47e9ee9 62828f46
ec7b4cc3 2939f4c5 4af9a9c4 57088dbb e053b8fb 9a22b385 6b756303 cef5ae28
e754d318 780c26b0 a95a3af2 9d47bc4a a722a24b 7aa1dc68 d1c9025c 42ec0e35
df6f66e8 c0e20dbc f92f1821 5e935ccb 92fa86e1 1348b708 2f591d26 af2962ec
4219cfd8 ddf799ee a3963291 1cf2cee8 fd4e8686 78a43a37 7c322f31 506838a0
692d504a f5f17180 2f753f41 8dfeab65 a825913f 009b5955 e14778eb bf4a1e9f
25c9118f 75c9b0ce c2504e9e d786740e 3d248f79 b82beca3 eace0bf1 4fe200f4
76626dce 57f590b4 6ff4da6d b3e10af9 848d29be 255fe9af 057e855a 5a4aa854
41e30fbc 1b8bbe1e 819bdfa8 5aab4323 44b32d38 68716f2a 815d5f58 63447dcf
ba6d70d1 318170ba 8006c553 d1d349fe 6992502a a6ad2fac f3839721 58b3df81
754fc9ee d7299f2b 0da83ddc f5940e64 4956889b 41e7486b 731f2889 3c756df6
2c27baa6 91dac963 5cf9b572 6c6940cd 091987e4 60e09629 c2ebcce2 d33a13cf
208e5817 64ced757 cbc7e4c3 862deb57 72e811f2 c04e0b82 6821ca19 b0a95cb1
5d4bd16c 7a7cb66c 3eae20db 7f805396 861d21bd 2846e268 c035f900 00d92eb4
0c521b3e a0a6aa77 4408ea36 ecb69847 d841088f 623250fd a90582de 5951cf6a
5dd34a71 6855eac2 7c267cdf 5e8c339f 80c3f73f 13960f41 33bc454e 11d2e040
436979e4 fee707ee 2eeb125e 68db53e1 031426a2 aa0a17f0 d989b436 76b7babc
80e0fc3e c942f141 3c60d779 a8b6262b 6f993954 978a3e9e 0915fdbb e4fe57ff
78240592 d1f0d9d9 d7d7773f 4dd98b60 2ffcbdf2 f6d4c5bb 8cf58bba 7ead016f
9351870e 01356aec e6a23b57 2ee55c6e e7816a85 4aa2f636 d987b754 535684c4
f6bb85fd 69988879 a708538c dff9c1cf 2cc3d9e2 cef05b98 11e289bb f55a0bad
5332a611 3f836afe 659291ee 05734ffa 25c70c4f 31f69485 6d8e0f43 2f4f2bc0
d397ae7a eeec570c 66cc0508 aa7557d9 e9c60a5f a238517e 57fba910 a7e6b69d
139ff44b 3f58c52d 442eb60e 2693f76f 690c1c51 e3a2b0be a160df08 65ba1f7f
14986491 5e945e36 110296db 58585abb 43838940 cc18dabd 0d361745 35f8615f
a6610f0d adf5468a c1b92db3 5d550c59 6426a968 0db2b6fe d6561715 e38fd1ef
aa3dfbd6 3cc15cd3 491dad2d db8c41cb ca2a00d6 ec8ca345 21b0662a dd21dc3a
b4429c4a 2ef10158 75a36bd2 1a1290c4 de399005 9489c3d0 942298d9 80d52aef
c88814ea 8f690225 6b937c01 08b2f105 240c26a2 9b2143d1 acceb4ce 4ae0dac4
a9d8bd6d 14070351 b5cb8eee 791ffc7c b9d840d2 c6a17fec 02fcc28d da87ba8c
afa966cd 4a9f79c0 42c662a4 3e0895fb 860c4fae 1afe77b1 37381ffd e8ad9c87
0db7d35b 502b5e26 1b4c6dcc 6156bd62 8a376e53 7afa9434 25e46f9a 3cebf6a4
9acf3b7c 372c7f7d a0732a12 e14afd32 08e7889c e048e0ab 7b4ce2c0 737b0c00
fc0b3273 ca52ed5a 7e4b00c6 93c9e328 dc9993ff ba55cc47 c212d15c 93a47b71
db229608 60f85c5c 24e7ba0e c52180d7 4d7f8ea0 00ae733a 65151c88 ba857b79
45851270 b991290f 8cd9cf2e 085d312c a372a125 3a835865 3f70345a 2130b846
2e5c602c 0931ec97 cd205e41 3c8deecd b505b4ac e039b72a 34a994e2 fa314403
e68eb517 94168737 0232e1d5 60c95a73 d7813585 76ac2b6f 74c18f99 d1d50c7d
26a2d76b e9efd4dd bd498c81 8f10dae0 8b474c9a c0e42e54 2e8e5b67 dc75cace
581e42e2 87aa9bc8 965a03dc b59e2c3f 7c7b495b 34b0024a a774c296 6f2c1801
48573fb7 adba3723 9f17da9a 90d59d41 94c02022 79a9a7bc fe9cc0c6 bb02921c
1afafefb 4c5ca680 3722f2f1 1fe89147 0b305b2c 0812c23f ba5bd209 692b5ce8
efcb2100 922d581c a197a748 b8f5bbe3 8aa890f3 731b4709 56301a76 78cac850
b53d9fd5 cfbb91e3 024f3fd6 1684c7ec 35f824fc 48019095 1e1471c2 b37fac34
4f47b6f8 9c34bfc8 fe5d0c27 1f09e30d fabe42eb dbbe19f2 98b1ab55 2dbdd190
b29fde64 285c5635 6c10ac1e 3f4261f7 42249bac 24ff7712 eb7ac549 97a931cb
0263a02b 55d0b5cb 8f481816 201ace66 13e36648 f1cfb92b 4a3fc73e dd02e1c4
6698c959 7ac5c56a 084c067c 0bca960f 46b335f4 c43b1a8c cb839fdb b72e865c
ac80262d 53e313aa 9df321d8 9c689f43 26902472 de2098c4 6a4a665b c170dab5
8d372f9f a4b995cb 14334e87 4565a5c3 b128cc60 c40f5cc9 27519a0d 96ff83b7
b2d8fa11 7415d3b3 285f9b75 9ebc9671 59e6d346 bb5f3a62 f942e675 a2042601
56bd23c9 1b851a17 bfb6ce1e d5f0ae02 c07b3aee 5b8ae6b6 1082df06 ca28942a
e0ef7ebf ad971804 0dd683b2 2280a8c1 b4e9361c cd033dd2 4c90de48 1aa5d495
c31dd3dd a744a175
`
